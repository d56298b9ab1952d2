package reconciling

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/integrator/stripe"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/metrics"
)

type Reconciler interface {
	Ledgers(ctx context.Context, window domain.TimeWindow, customerID string) (*domain.LedgerResult, error)
	TotalRevenue(ctx context.Context, window domain.TimeWindow) (*domain.RevenueResult, error)
	Charges(ctx context.Context, window domain.TimeWindow) ([]domain.ChargeEvent, error)
	PaymentIntents(ctx context.Context, window domain.TimeWindow) ([]domain.PaymentIntentEvent, error)
	Events(ctx context.Context, window domain.TimeWindow) ([]domain.Event, error)
}

type Service struct {
	integrator stripe.Integrator
	loc        *time.Location
}

func NewService(integrator stripe.Integrator, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}

	return &Service{
		integrator: integrator,
		loc:        loc,
	}
}

// Ledgers monta os ledgers da janela. Com customerID o resultado tem exatamente um ledger
// e a ausência de cobranças é um NotFoundError.
func (s *Service) Ledgers(ctx context.Context, window domain.TimeWindow, customerID string) (*domain.LedgerResult, error) {
	charges, err := s.integrator.SearchCharges(ctx, window, customerID)
	if err != nil {
		return nil, err
	}

	if customerID != "" {
		return s.singleLedger(window, customerID, charges)
	}

	ledgers, warnings := BuildLedgers(charges, s.loc)
	s.logWarnings(window, warnings)

	return &domain.LedgerResult{
		Window:   window,
		Ledgers:  ledgers,
		Warnings: warnings,
	}, nil
}

func (s *Service) singleLedger(window domain.TimeWindow, customerID string, charges []domain.ChargeEvent) (*domain.LedgerResult, error) {
	if len(charges) == 0 {
		return nil, &domain.NotFoundError{
			Resource: "charges",
			Key:      customerID + " em " + window.Label(),
		}
	}

	ledger := newLedger(customerID)
	ledger.CustomerEmail = charges[0].ReceiptEmail
	ledger.ChargeCount = len(charges)

	for _, charge := range charges {
		switch charge.Status {
		case domain.ChargeStatusSucceeded:
			ledger.SuccessfulCharges = append(ledger.SuccessfulCharges, NewChargeTuple(charge, s.loc))
		case domain.ChargeStatusFailed:
			ledger.FailedCharges = append(ledger.FailedCharges, NewChargeTuple(charge, s.loc))
		}
	}

	return &domain.LedgerResult{
		Window:  window,
		Ledgers: []domain.CustomerLedger{ledger},
	}, nil
}

// TotalRevenue soma o valor capturado das cobranças bem-sucedidas da janela
func (s *Service) TotalRevenue(ctx context.Context, window domain.TimeWindow) (*domain.RevenueResult, error) {
	result, err := s.Ledgers(ctx, window, "")
	if err != nil {
		return nil, err
	}

	revenue, warnings := SumRevenue(result.Ledgers)
	s.logWarnings(window, warnings)

	return &domain.RevenueResult{
		Window:   window,
		Revenue:  revenue,
		Warnings: append(result.Warnings, warnings...),
	}, nil
}

func (s *Service) Charges(ctx context.Context, window domain.TimeWindow) ([]domain.ChargeEvent, error) {
	return s.integrator.SearchCharges(ctx, window, "")
}

func (s *Service) PaymentIntents(ctx context.Context, window domain.TimeWindow) ([]domain.PaymentIntentEvent, error) {
	return s.integrator.SearchPaymentIntents(ctx, window)
}

// Events lista os eventos da conta na janela, usados para auditar a atividade de cobrança
func (s *Service) Events(ctx context.Context, window domain.TimeWindow) ([]domain.Event, error) {
	return s.integrator.ListEvents(ctx, window)
}

func (s *Service) Location() *time.Location {
	return s.loc
}

func (s *Service) logWarnings(window domain.TimeWindow, warnings []domain.PartialAggregationWarning) {
	for _, w := range warnings {
		metrics.AggregationWarningsTotal.WithLabelValues(w.Table).Inc()
		logrus.WithFields(logrus.Fields{
			"window": window.Label(),
			"table":  w.Table,
			"column": w.Column,
			"row":    w.Row,
		}).Warn(w.Error())
	}
}
