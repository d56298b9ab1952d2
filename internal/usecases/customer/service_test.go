package customer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/integrator/stripe/mocks"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
)

func stringPtr(s string) *string {
	return &s
}

func int64Ptr(v int64) *int64 {
	return &v
}

var window = domain.TimeWindow{
	Start: domain.CalendarDate{Year: 2024, Month: time.January, Day: 1},
	End:   domain.CalendarDate{Year: 2024, Month: time.January, Day: 15},
}

func TestService_NewClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	service := NewService(mockIntegrator)

	mockIntegrator.EXPECT().
		SearchCustomers(gomock.Any(), window).
		Return([]domain.Customer{
			{ID: "cus_1", Email: stringPtr("a@x.com"), CreatedAt: 1},
			{ID: "cus_2", Email: stringPtr("b@x.com"), CreatedAt: 2},
			{ID: "cus_3", Email: stringPtr("a@x.com"), CreatedAt: 3},
			{ID: "cus_4", Email: nil, CreatedAt: 4},
			{ID: "cus_5", Email: nil, CreatedAt: 5},
		}, nil)

	result, err := service.NewClients(context.Background(), window)

	require.NoError(t, err)
	require.Len(t, result.Unique, 4)
	assert.Equal(t, "cus_1", result.Unique[0].ID)
	assert.Equal(t, "cus_2", result.Unique[1].ID)
	assert.Equal(t, "cus_4", result.Unique[2].ID)
	assert.Equal(t, "cus_5", result.Unique[3].ID)
	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, "cus_3", result.Duplicates[0].ID)
	assert.Equal(t, window, result.Window)
}

func TestService_NewClients_UpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	mockIntegrator.EXPECT().
		SearchCustomers(gomock.Any(), gomock.Any()).
		Return(nil, &domain.QueryFailure{Resource: "customers", StatusCode: 429, Retryable: true})

	result, err := NewService(mockIntegrator).NewClients(context.Background(), window)

	assert.Nil(t, result)
	assert.True(t, domain.IsRetryable(err))
}

func TestService_ClientsByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	service := NewService(mockIntegrator)

	gomock.InOrder(
		mockIntegrator.EXPECT().
			SearchCustomersByEmail(gomock.Any(), "a@x.com").
			Return([]domain.Customer{{ID: "cus_1"}, {ID: "cus_3"}}, nil),
		mockIntegrator.EXPECT().
			SearchCustomersByEmail(gomock.Any(), "b@x.com").
			Return([]domain.Customer{{ID: "cus_2"}}, nil),
	)

	customers, err := service.ClientsByEmail(context.Background(), []string{"a@x.com", "b@x.com"})

	require.NoError(t, err)
	assert.Equal(t, []domain.Customer{{ID: "cus_1"}, {ID: "cus_3"}, {ID: "cus_2"}}, customers)

	_, err = service.ClientsByEmail(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestService_ExpiringSubscriptions(t *testing.T) {
	subs := []domain.Subscription{
		{ID: "sub_1", CancelAt: int64Ptr(1706000000)},
		{ID: "sub_2"},
		{ID: "sub_3", CancelAt: int64Ptr(0)},
	}

	tests := []struct {
		name          string
		scheduledOnly bool
		expected      []string
	}{
		{name: "todas as assinaturas", scheduledOnly: false, expected: []string{"sub_1", "sub_2", "sub_3"}},
		{name: "apenas com cancelamento agendado", scheduledOnly: true, expected: []string{"sub_1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockIntegrator := mocks.NewMockIntegrator(ctrl)
			mockIntegrator.EXPECT().ListSubscriptions(gomock.Any()).Return(subs, nil)

			result, err := NewService(mockIntegrator).ExpiringSubscriptions(context.Background(), tt.scheduledOnly)

			require.NoError(t, err)
			ids := make([]string, 0, len(result))
			for _, s := range result {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}
