package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/config"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/usecases/customer"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/usecases/reconciling"
	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/metrics"
)

// Exporter grava o relatório montado em algum destino externo
type Exporter interface {
	Format() string
	Export(ctx context.Context, report *domain.Report) (string, error)
}

type ReportGenerator interface {
	BuildReport(ctx context.Context, window domain.TimeWindow) (*domain.Report, error)
	Generate(ctx context.Context, window domain.TimeWindow) (*Result, error)
	Platform() string
}

// Result traz o relatório e os artefatos gravados
type Result struct {
	Report    *domain.Report `json:"report"`
	Artifacts []string       `json:"artifacts,omitempty"`
}

type FormatFailure struct {
	Format string
	Err    error
}

// ExportError indica que o relatório foi montado mas ao menos uma exportação falhou
type ExportError struct {
	Failures []FormatFailure
}

func (e *ExportError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("%s: %v", f.Format, f.Err))
	}
	return "export failed: " + strings.Join(parts, "; ")
}

func (e *ExportError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}

type Options struct {
	PreviousPeriodDays int
	ParallelFetch      bool
	ExportEnabled      bool
	Location           *time.Location
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		PreviousPeriodDays: cfg.Report.PreviousPeriodDays,
		ParallelFetch:      cfg.Report.ParallelFetch,
		ExportEnabled:      cfg.Export.Enabled,
		Location:           cfg.Location(),
	}
}

type Generator struct {
	platform   string
	customers  customer.CustomerService
	reconciler reconciling.Reconciler
	exporters  []Exporter
	opts       Options
}

func NewGenerator(platform string, customers customer.CustomerService, reconciler reconciling.Reconciler, opts Options, exporters ...Exporter) *Generator {
	if opts.PreviousPeriodDays <= 0 {
		opts.PreviousPeriodDays = domain.DefaultPreviousPeriodDays
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}

	return &Generator{
		platform:   platform,
		customers:  customers,
		reconciler: reconciler,
		exporters:  exporters,
		opts:       opts,
	}
}

func (g *Generator) Platform() string {
	return g.platform
}

type periodData struct {
	clients *domain.NewClientsResult
	charges []domain.ChargeEvent
}

// BuildReport monta o relatório comparando a janela atual com a anterior.
// O resultado não depende de a exportação estar habilitada.
func (g *Generator) BuildReport(ctx context.Context, window domain.TimeWindow) (*domain.Report, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	previous := domain.PreviousWindow(window, g.opts.PreviousPeriodDays)

	var current, prior periodData
	if err := g.fetch(ctx, window, previous, &current, &prior); err != nil {
		metrics.ReportBuildsTotal.WithLabelValues(g.platform, metrics.OutcomeFailure).Inc()
		logrus.WithFields(logrus.Fields{
			"platform": g.platform,
			"window":   window.Label(),
			"error":    err.Error(),
		}).Error("Erro ao buscar dados do relatório")
		return nil, err
	}

	report := &domain.Report{
		Platform:           g.platform,
		CurrentWindow:      window,
		PreviousWindow:     previous,
		CurrentDuplicates:  current.clients.Duplicates,
		PreviousDuplicates: prior.clients.Duplicates,
	}

	report.CurrentClients = ClientsTable(domain.SheetName(window, domain.SheetCurrentClients), g.platform, current.clients.Unique, g.opts.Location)
	report.PreviousClients = ClientsTable(domain.SheetName(previous, domain.SheetPreviousClients), g.platform, prior.clients.Unique, g.opts.Location)

	var warnings []domain.PartialAggregationWarning
	var w []domain.PartialAggregationWarning

	report.CurrentCharges, w = ChargesTable(domain.SheetName(window, domain.SheetCurrentCharges), current.charges, g.opts.Location)
	warnings = append(warnings, w...)
	report.PreviousCharges, w = ChargesTable(domain.SheetName(previous, domain.SheetPreviousCharges), prior.charges, g.opts.Location)
	warnings = append(warnings, w...)

	report.CurrentLedgers, w = reconciling.BuildLedgers(current.charges, g.opts.Location)
	warnings = append(warnings, w...)
	report.PreviousLedgers, w = reconciling.BuildLedgers(prior.charges, g.opts.Location)
	warnings = append(warnings, w...)

	report.CurrentRevenue, w = reconciling.SumRevenue(report.CurrentLedgers)
	warnings = append(warnings, w...)
	report.PreviousRevenue, w = reconciling.SumRevenue(report.PreviousLedgers)
	warnings = append(warnings, w...)

	report.Warnings = warnings
	for _, warning := range warnings {
		metrics.AggregationWarningsTotal.WithLabelValues(warning.Table).Inc()
		logrus.WithFields(logrus.Fields{
			"platform": g.platform,
			"table":    warning.Table,
		}).Warn(warning.Error())
	}

	metrics.ReportBuildsTotal.WithLabelValues(g.platform, metrics.OutcomeSuccess).Inc()
	metrics.ReportBuildDuration.WithLabelValues(g.platform).Observe(time.Since(start).Seconds())

	logrus.WithFields(logrus.Fields{
		"platform":        g.platform,
		"window":          window.Label(),
		"report_clients":  len(current.clients.Unique),
		"report_charges":  len(current.charges),
		"report_revenue":  report.CurrentRevenue,
		"report_previous": previous.Label(),
		"report_warnings": len(warnings),
	}).Info("Relatório montado com sucesso")

	return report, nil
}

// fetch executa os quatro pipelines independentes, em paralelo quando configurado
func (g *Generator) fetch(ctx context.Context, window, previous domain.TimeWindow, current, prior *periodData) error {
	tasks := []func(ctx context.Context) error{
		func(ctx context.Context) (err error) {
			current.clients, err = g.customers.NewClients(ctx, window)
			return err
		},
		func(ctx context.Context) (err error) {
			prior.clients, err = g.customers.NewClients(ctx, previous)
			return err
		},
		func(ctx context.Context) (err error) {
			current.charges, err = g.reconciler.Charges(ctx, window)
			return err
		},
		func(ctx context.Context) (err error) {
			prior.charges, err = g.reconciler.Charges(ctx, previous)
			return err
		},
	}

	if !g.opts.ParallelFetch {
		for _, task := range tasks {
			if err := task(ctx); err != nil {
				return err
			}
		}
		return nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		group.Go(func() error {
			return task(groupCtx)
		})
	}

	return group.Wait()
}

// Generate monta o relatório e exporta quando habilitado. Uma falha de exportação
// é devolvida como *ExportError junto com o relatório completo.
func (g *Generator) Generate(ctx context.Context, window domain.TimeWindow) (*Result, error) {
	report, err := g.BuildReport(ctx, window)
	if err != nil {
		return nil, err
	}

	result := &Result{Report: report}

	if !g.opts.ExportEnabled {
		logrus.WithField("platform", g.platform).Info("Exportação de arquivos desabilitada, relatório apenas retornado")
		return result, nil
	}

	var exportErr *ExportError
	for _, exporter := range g.exporters {
		artifact, err := exporter.Export(ctx, report)
		if err != nil {
			metrics.ExportsTotal.WithLabelValues(exporter.Format(), metrics.OutcomeFailure).Inc()
			logrus.WithFields(logrus.Fields{
				"platform": g.platform,
				"format":   exporter.Format(),
				"error":    err.Error(),
			}).Error("Erro ao exportar relatório")

			if exportErr == nil {
				exportErr = &ExportError{}
			}
			exportErr.Failures = append(exportErr.Failures, FormatFailure{Format: exporter.Format(), Err: err})
			continue
		}

		metrics.ExportsTotal.WithLabelValues(exporter.Format(), metrics.OutcomeSuccess).Inc()
		result.Artifacts = append(result.Artifacts, artifact)
	}

	if exportErr != nil {
		return result, exportErr
	}

	return result, nil
}
