package snapshot

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	stripedomain "github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/integrator/stripe/domain"
	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/integrator/stripe/stripeclient"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
)

// CaptureOptions descreve onde gravar e quanto do período anterior incluir
type CaptureOptions struct {
	Dir                string
	Location           *time.Location
	PreviousPeriodDays int
	ShowProgress       bool
}

// CaptureResult informa quantos registros foram gravados por recurso
type CaptureResult struct {
	Dir    string            `json:"dir"`
	Window domain.TimeWindow `json:"window"`
	Counts map[string]int    `json:"counts"`
}

type captureStep struct {
	resource string
	fetch    stripeclient.PageFetcher
}

// CoverageWindow é o intervalo que um relatório da janela consulta: o período anterior mais o atual
func CoverageWindow(window domain.TimeWindow, previousPeriodDays int) domain.TimeWindow {
	if previousPeriodDays <= 0 {
		previousPeriodDays = domain.DefaultPreviousPeriodDays
	}

	previous := domain.PreviousWindow(window, previousPeriodDays)
	if previous.Start.Before(window.Start) {
		return domain.TimeWindow{Start: previous.Start, End: window.End}
	}
	return window
}

// Capture grava em opts.Dir um arquivo JSON por recurso com todos os registros que o relatório da janela consulta
func Capture(ctx context.Context, client stripeclient.Client, window domain.TimeWindow, opts CaptureOptions) (*CaptureResult, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	dir := opts.Dir

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("snapshot: erro ao criar diretório %s: %w", dir, err)
	}

	coverage := CoverageWindow(window, opts.PreviousPeriodDays)
	start, end := coverage.Bounds(loc)
	query := stripeclient.WindowQuery(start, end)

	eventParams := url.Values{}
	eventParams.Set("created[gt]", strconv.FormatInt(start, 10))
	eventParams.Set("created[lt]", strconv.FormatInt(end, 10))

	subscriptionParams := url.Values{}
	subscriptionParams.Set("status", "all")

	steps := []captureStep{
		{stripedomain.ResourceCustomers, stripeclient.SearchFetcher(client, stripedomain.ResourceCustomers, query)},
		{stripedomain.ResourceCharges, stripeclient.SearchFetcher(client, stripedomain.ResourceCharges, query)},
		{stripedomain.ResourcePaymentIntents, stripeclient.SearchFetcher(client, stripedomain.ResourcePaymentIntents, query)},
		{stripedomain.ResourceSubscriptions, stripeclient.ListFetcher(client, stripedomain.ResourceSubscriptions, subscriptionParams)},
		{stripedomain.ResourceEvents, stripeclient.ListFetcher(client, stripedomain.ResourceEvents, eventParams)},
	}

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = progressbar.Default(int64(len(steps)), "capturando snapshot")
	}

	result := &CaptureResult{Dir: dir, Window: coverage, Counts: map[string]int{}}

	for _, step := range steps {
		items, err := stripeclient.FetchAll[jsoniter.RawMessage](ctx, step.resource, step.fetch)
		if err != nil {
			return nil, err
		}

		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("snapshot: erro ao serializar %s: %w", step.resource, err)
		}

		path := FilePath(dir, step.resource)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("snapshot: erro ao gravar %s: %w", path, err)
		}

		result.Counts[step.resource] = len(items)

		logrus.WithFields(logrus.Fields{
			"resource": step.resource,
			"window":   coverage.Label(),
			"count":    len(items),
		}).Info("snapshot: recurso capturado")

		if bar != nil {
			bar.Add(1)
		}
	}

	return result, nil
}
