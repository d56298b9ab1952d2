package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/config"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/usecases/reporting"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/usecases/reporting/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.App{Timezone: "UTC"},
		WeeklyReportSync: config.WeeklyReportSync{
			CronSchedule: "0 6 * * 1",
			LookbackDays: 14,
		},
	}
}

func newTestService(generators map[string]reporting.ReportGenerator) *WeeklyReportSyncService {
	s := NewWeeklyReportSyncService(reporting.NewRegistry(config.PlatformKahunas, generators), testConfig())
	s.now = func() time.Time { return time.Date(2024, time.January, 15, 6, 0, 0, 0, time.UTC) }
	return s
}

var expectedWindow = domain.TimeWindow{
	Start: domain.CalendarDate{Year: 2024, Month: time.January, Day: 1},
	End:   domain.CalendarDate{Year: 2024, Month: time.January, Day: 15},
}

func TestWeeklyReportSyncService_Window(t *testing.T) {
	s := newTestService(map[string]reporting.ReportGenerator{})
	assert.Equal(t, expectedWindow, s.Window())
}

func TestWeeklyReportSyncService_RunWeeklyReports(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(kahunas, studio *mocks.MockReportGenerator)
		validate func(t *testing.T, s *WeeklyReportSyncService, err error)
	}{
		{
			name: "todas as plataformas geradas",
			setup: func(kahunas, studio *mocks.MockReportGenerator) {
				kahunas.EXPECT().Generate(gomock.Any(), expectedWindow).
					Return(&reporting.Result{Artifacts: []string{"k.xlsx"}}, nil)
				studio.EXPECT().Generate(gomock.Any(), expectedWindow).
					Return(&reporting.Result{}, nil)
			},
			validate: func(t *testing.T, s *WeeklyReportSyncService, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"k.xlsx"}, s.lastOutcomes[config.PlatformKahunas].Artifacts)
				assert.Equal(t, "20240101_to_20240115", s.lastOutcomes[config.PlatformStudioBookings].Window)
			},
		},
		{
			name: "falha de uma plataforma não interrompe a outra",
			setup: func(kahunas, studio *mocks.MockReportGenerator) {
				kahunas.EXPECT().Generate(gomock.Any(), expectedWindow).
					Return(nil, &domain.QueryFailure{Resource: "charges", Reason: "boom"})
				studio.EXPECT().Generate(gomock.Any(), expectedWindow).
					Return(&reporting.Result{}, nil)
			},
			validate: func(t *testing.T, s *WeeklyReportSyncService, err error) {
				require.Error(t, err)
				var qf *domain.QueryFailure
				assert.True(t, errors.As(err, &qf))
				assert.NotEmpty(t, s.lastOutcomes[config.PlatformKahunas].Error)
				assert.Empty(t, s.lastOutcomes[config.PlatformStudioBookings].Error)
			},
		},
		{
			name: "falha de exportação não é tratada como erro da execução",
			setup: func(kahunas, studio *mocks.MockReportGenerator) {
				exportErr := &reporting.ExportError{Failures: []reporting.FormatFailure{{Format: "xlsx", Err: errors.New("disk full")}}}
				kahunas.EXPECT().Generate(gomock.Any(), expectedWindow).
					Return(&reporting.Result{Artifacts: []string{"k.pdf"}}, exportErr)
				studio.EXPECT().Generate(gomock.Any(), expectedWindow).
					Return(&reporting.Result{}, nil)
			},
			validate: func(t *testing.T, s *WeeklyReportSyncService, err error) {
				require.NoError(t, err)
				outcome := s.lastOutcomes[config.PlatformKahunas]
				assert.Equal(t, []string{"k.pdf"}, outcome.Artifacts)
				assert.Contains(t, outcome.Error, "disk full")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			kahunas := mocks.NewMockReportGenerator(ctrl)
			studio := mocks.NewMockReportGenerator(ctrl)
			tt.setup(kahunas, studio)

			s := newTestService(map[string]reporting.ReportGenerator{
				config.PlatformKahunas:        kahunas,
				config.PlatformStudioBookings: studio,
			})

			err := s.RunWeeklyReports(context.Background())
			tt.validate(t, s, err)

			assert.False(t, s.syncRunning)
			assert.False(t, s.lastSyncCompletedAt.IsZero())
		})
	}
}

func TestWeeklyReportSyncService_SkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mocks.NewMockReportGenerator(ctrl)

	s := newTestService(map[string]reporting.ReportGenerator{config.PlatformKahunas: generator})
	s.syncRunning = true

	assert.NoError(t, s.RunWeeklyReports(context.Background()))
	assert.True(t, s.lastSyncStartedAt.IsZero())
}

func TestWeeklyReportSyncService_StartDisabled(t *testing.T) {
	s := newTestService(map[string]reporting.ReportGenerator{})
	assert.NoError(t, s.Start(context.Background()))
}

func TestWeeklyReportSyncService_GetStatus(t *testing.T) {
	s := newTestService(map[string]reporting.ReportGenerator{})
	s.lastOutcomes[config.PlatformKahunas] = RunOutcome{Window: "20240101_to_20240115"}

	status := s.GetStatus()

	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "0 6 * * 1", status["sync_cron"])
	assert.Equal(t, 14, status["lookback_days"])
	outcomes := status["last_outcomes"].(map[string]RunOutcome)
	assert.Equal(t, "20240101_to_20240115", outcomes[config.PlatformKahunas].Window)
}
