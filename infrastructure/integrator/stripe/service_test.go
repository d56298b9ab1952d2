package stripe

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	stripedomain "github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/integrator/stripe/domain"
	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/integrator/stripe/mocks"
	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/integrator/stripe/stripeclient"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
)

func page(hasMore bool, next string, items ...string) *stripedomain.Page {
	p := &stripedomain.Page{HasMore: hasMore, NextPage: next}
	for _, item := range items {
		p.Data = append(p.Data, []byte(item))
	}
	return p
}

func newIntegrator(client stripeclient.Client) *StripeIntegrator {
	return &StripeIntegrator{Client: client, platform: "KAHUNAS", loc: time.UTC}
}

var testWindow = domain.TimeWindow{
	Start: domain.CalendarDate{Year: 2024, Month: time.January, Day: 1},
	End:   domain.CalendarDate{Year: 2024, Month: time.January, Day: 15},
}

func TestStripeIntegrator_SearchCustomers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := newIntegrator(mockClient)

	gomock.InOrder(
		mockClient.EXPECT().
			SearchPage(gomock.Any(), stripedomain.ResourceCustomers, stripeclient.WindowQuery(1704067200, 1705276800), "").
			Return(page(true, "next_1",
				`{"id":"cus_1","object":"customer","email":"a@x.com","created":1704100000}`,
				`{"id":"cus_2","object":"customer","email":null,"created":1704200000}`,
			), nil),
		mockClient.EXPECT().
			SearchPage(gomock.Any(), stripedomain.ResourceCustomers, gomock.Any(), "next_1").
			Return(page(false, "",
				`{"id":"cus_3","object":"customer","email":"b@x.com","created":1704300000}`,
			), nil),
	)

	customers, err := integrator.SearchCustomers(context.Background(), testWindow)

	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, "cus_1", customers[0].ID)
	assert.Equal(t, "a@x.com", *customers[0].Email)
	assert.Equal(t, "KAHUNAS", customers[0].Platform)
	assert.Nil(t, customers[1].Email)
	assert.Equal(t, int64(1704300000), customers[2].CreatedAt)
}

func TestStripeIntegrator_SearchCharges(t *testing.T) {
	tests := []struct {
		name       string
		customerID string
		setup      func(m *mocks.MockClient)
		validate   func(t *testing.T, charges []domain.ChargeEvent, err error)
	}{
		{
			name: "modo agregado",
			setup: func(m *mocks.MockClient) {
				m.EXPECT().
					SearchPage(gomock.Any(), stripedomain.ResourceCharges, stripeclient.WindowQuery(1704067200, 1705276800), "").
					Return(page(false, "",
						`{"id":"ch_1","object":"charge","customer":"cus_1","receipt_email":"a@x.com","status":"succeeded","created":1704100000,"amount":1500,"amount_captured":1500,"description":"Plano mensal"}`,
						`{"id":"ch_2","object":"charge","customer":null,"status":"failed","created":1704100001,"amount":900,"amount_captured":0}`,
					), nil)
			},
			validate: func(t *testing.T, charges []domain.ChargeEvent, err error) {
				require.NoError(t, err)
				require.Len(t, charges, 2)
				assert.Equal(t, domain.ChargeEvent{
					ID:              "ch_1",
					CustomerID:      "cus_1",
					ReceiptEmail:    "a@x.com",
					Status:          domain.ChargeStatusSucceeded,
					CreatedAt:       1704100000,
					AmountRequested: 1500,
					AmountCaptured:  1500,
					Description:     "Plano mensal",
				}, charges[0])
				assert.Empty(t, charges[1].CustomerID)
				assert.Equal(t, domain.ChargeStatusFailed, charges[1].Status)
			},
		},
		{
			name:       "modo cliente único",
			customerID: "cus_9",
			setup: func(m *mocks.MockClient) {
				expected, _ := stripeclient.WindowQuery(1704067200, 1705276800).And("customer", "cus_9")
				m.EXPECT().
					SearchPage(gomock.Any(), stripedomain.ResourceCharges, expected, "").
					Return(page(false, ""), nil)
			},
			validate: func(t *testing.T, charges []domain.ChargeEvent, err error) {
				require.NoError(t, err)
				assert.Empty(t, charges)
			},
		},
		{
			name:       "id de cliente com aspas",
			customerID: "cus_'1",
			setup:      func(m *mocks.MockClient) {},
			validate: func(t *testing.T, charges []domain.ChargeEvent, err error) {
				assert.ErrorIs(t, err, domain.ErrInvalidFilter)
			},
		},
		{
			name: "falha do upstream",
			setup: func(m *mocks.MockClient) {
				m.EXPECT().
					SearchPage(gomock.Any(), stripedomain.ResourceCharges, gomock.Any(), "").
					Return(nil, &domain.QueryFailure{Resource: "charges", StatusCode: 500, Retryable: true})
			},
			validate: func(t *testing.T, charges []domain.ChargeEvent, err error) {
				assert.True(t, domain.IsRetryable(err))
				assert.Nil(t, charges)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mocks.NewMockClient(ctrl)
			tt.setup(mockClient)

			charges, err := newIntegrator(mockClient).SearchCharges(context.Background(), testWindow, tt.customerID)
			tt.validate(t, charges, err)
		})
	}
}

func TestStripeIntegrator_SearchPaymentIntents_SkipsAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		SearchPage(gomock.Any(), stripedomain.ResourcePaymentIntents, gomock.Any(), "").
		Return(page(false, "",
			`{"id":"pi_1","object":"payment_intent","customer":"cus_1","receipt_email":"a@x.com","description":"Aula","created":1704100000,"amount_received":2500}`,
			`{"id":"pi_2","object":"payment_intent","customer":null,"created":1704100001,"amount_received":100}`,
		), nil)

	intents, err := newIntegrator(mockClient).SearchPaymentIntents(context.Background(), testWindow)

	require.NoError(t, err)
	require.Len(t, intents, 1)
	assert.Equal(t, "pi_1", intents[0].ID)
	assert.Equal(t, "cus_1", intents[0].CustomerID)
	assert.Equal(t, int64(2500), intents[0].AmountReceived)
}

func TestStripeIntegrator_ListSubscriptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	gomock.InOrder(
		mockClient.EXPECT().
			ListPage(gomock.Any(), stripedomain.ResourceSubscriptions, gomock.Any(), "").
			Return(page(true, "sub_1",
				`{"id":"sub_1","customer":"cus_1","status":"active","current_period_start":100,"current_period_end":200,"cancel_at":300}`,
			), nil),
		mockClient.EXPECT().
			ListPage(gomock.Any(), stripedomain.ResourceSubscriptions, gomock.Any(), "sub_1").
			Return(page(false, "",
				`{"id":"sub_2","customer":{"id":"cus_2","object":"customer"},"status":"active","cancel_at":null,"items":{"data":[{"id":"si_1","current_period_start":400,"current_period_end":500}]}}`,
			), nil),
	)

	subs, err := newIntegrator(mockClient).ListSubscriptions(context.Background())

	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "cus_1", subs[0].CustomerID)
	assert.True(t, subs[0].Expiring())
	assert.Equal(t, "cus_2", subs[1].CustomerID)
	assert.Equal(t, int64(400), subs[1].CurrentPeriodStart)
	assert.Equal(t, int64(500), subs[1].CurrentPeriodEnd)
	assert.False(t, subs[1].Expiring())
}

func TestStripeIntegrator_ListEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		ListPage(gomock.Any(), stripedomain.ResourceEvents, gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _ string, params url.Values, _ string) (*stripedomain.Page, error) {
			assert.Equal(t, []string{"1704067200"}, params["created[gt]"])
			assert.Equal(t, []string{"1705276800"}, params["created[lt]"])
			return page(false, "", `{"id":"evt_1","object":"event","type":"charge.succeeded","created":1704100000}`), nil
		})

	events, err := newIntegrator(mockClient).ListEvents(context.Background(), testWindow)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.Event{ID: "evt_1", Type: "charge.succeeded", CreatedAt: 1704100000}, events[0])
}
