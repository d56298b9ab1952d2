// Package scheduler contém os serviços de agendamento para geração periódica de relatórios
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/config"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/usecases/reporting"
)

type WeeklyReportSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// RunOutcome resume a última execução de uma plataforma
type RunOutcome struct {
	Window    string   `json:"window"`
	Artifacts []string `json:"artifacts,omitempty"`
	Error     string   `json:"error,omitempty"`
}

type WeeklyReportSyncService struct {
	scheduler           *gocron.Scheduler
	registry            *reporting.Registry
	config              WeeklyReportSyncConfig
	loc                 *time.Location
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastOutcomes        map[string]RunOutcome
}

func NewWeeklyReportSyncService(registry *reporting.Registry, cfg *config.Config) *WeeklyReportSyncService {
	syncConfig := WeeklyReportSyncConfig{
		CronSchedule: cfg.WeeklyReportSync.CronSchedule, // Default: segunda-feira às 6h
		LookbackDays: cfg.WeeklyReportSync.LookbackDays,
		SyncEnabled:  cfg.WeeklyReportSync.Enabled, // Default: desabilitado
	}
	if syncConfig.LookbackDays <= 0 {
		syncConfig.LookbackDays = domain.DefaultPreviousPeriodDays
	}

	loc := cfg.Location()

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
	}).Info("Configuração do agendador de relatórios semanais carregada")

	return &WeeklyReportSyncService{
		scheduler:    gocron.NewScheduler(loc),
		registry:     registry,
		config:       syncConfig,
		loc:          loc,
		now:          time.Now,
		lastOutcomes: map[string]RunOutcome{},
	}
}

func (s *WeeklyReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de relatórios semanais desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de relatórios semanais")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunWeeklyReports(ctx); err != nil {
			logrus.WithError(err).Error("Erro na geração dos relatórios semanais")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatórios semanais: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de relatórios semanais")
		s.scheduler.Stop()
	}()

	return nil
}

// Window devolve a janela [hoje - lookback, hoje) no fuso dos relatórios
func (s *WeeklyReportSyncService) Window() domain.TimeWindow {
	end := domain.NewCalendarDate(s.now().In(s.loc))
	return domain.TimeWindow{Start: end.AddDays(-s.config.LookbackDays), End: end}
}

// RunWeeklyReports gera o relatório de cada plataforma registrada. Uma plataforma com
// falha não impede as demais; o erro devolvido junta todas as falhas.
func (s *WeeklyReportSyncService) RunWeeklyReports(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Geração de relatórios semanais já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.syncMutex.Unlock()
	}()

	window := s.Window()
	logrus.WithField("window", window.Label()).Info("Iniciando geração dos relatórios semanais")

	var errs []error
	for _, platform := range s.registry.Platforms() {
		outcome, err := s.runPlatform(ctx, platform, window)

		s.syncMutex.Lock()
		s.lastOutcomes[platform] = outcome
		s.syncMutex.Unlock()

		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", platform, err))
		}
	}

	logrus.WithFields(logrus.Fields{
		"window":   window.Label(),
		"failures": len(errs),
	}).Info("Geração dos relatórios semanais concluída")

	return errors.Join(errs...)
}

func (s *WeeklyReportSyncService) runPlatform(ctx context.Context, platform string, window domain.TimeWindow) (RunOutcome, error) {
	outcome := RunOutcome{Window: window.Label()}

	generator, err := s.registry.Get(platform)
	if err != nil {
		outcome.Error = err.Error()
		return outcome, err
	}

	result, err := generator.Generate(ctx, window)
	if result != nil {
		outcome.Artifacts = result.Artifacts
	}

	var exportErr *reporting.ExportError
	if errors.As(err, &exportErr) {
		// o relatório foi montado, só parte das exportações falhou
		logrus.WithFields(logrus.Fields{
			"platform": platform,
			"error":    err.Error(),
		}).Warn("Relatório semanal gerado com falhas de exportação")
		outcome.Error = err.Error()
		return outcome, nil
	}

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform": platform,
			"window":   window.Label(),
			"error":    err.Error(),
		}).Error("Erro ao gerar relatório semanal")
		outcome.Error = err.Error()
		return outcome, err
	}

	return outcome, nil
}

// TriggerManualSync inicia manualmente a geração dos relatórios semanais
func (s *WeeklyReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de relatórios semanais já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual dos relatórios semanais")
	go func() {
		if err := s.RunWeeklyReports(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na geração manual dos relatórios semanais")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *WeeklyReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	outcomes := make(map[string]RunOutcome, len(s.lastOutcomes))
	for k, v := range s.lastOutcomes {
		outcomes[k] = v
	}

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"lookback_days":          s.config.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_outcomes":          outcomes,
	}
}
