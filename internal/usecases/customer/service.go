package customer

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/integrator/stripe"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
)

var ErrEmailRequired = errors.New("at least one email is required")

type CustomerService interface {
	NewClients(ctx context.Context, window domain.TimeWindow) (*domain.NewClientsResult, error)
	ClientsByEmail(ctx context.Context, emails []string) ([]domain.Customer, error)
	ExpiringSubscriptions(ctx context.Context, scheduledOnly bool) ([]domain.Subscription, error)
}

type Service struct {
	integrator stripe.Integrator
}

func NewService(integrator stripe.Integrator) *Service {
	return &Service{integrator: integrator}
}

// NewClients retorna os clientes criados na janela, deduplicados por email
func (s *Service) NewClients(ctx context.Context, window domain.TimeWindow) (*domain.NewClientsResult, error) {
	customers, err := s.integrator.SearchCustomers(ctx, window)
	if err != nil {
		return nil, err
	}

	unique, duplicates := DedupeByKey(customers, domain.Customer.EmailKey)

	if len(duplicates) > 0 {
		logrus.WithFields(logrus.Fields{
			"window":     window.Label(),
			"duplicates": len(duplicates),
		}).Info("Clientes com email repetido excluídos da contagem")
	}

	return &domain.NewClientsResult{
		Window:     window,
		Unique:     unique,
		Duplicates: duplicates,
	}, nil
}

// ClientsByEmail busca cada email individualmente, mantendo a ordem da lista recebida
func (s *Service) ClientsByEmail(ctx context.Context, emails []string) ([]domain.Customer, error) {
	if len(emails) == 0 {
		return nil, ErrEmailRequired
	}

	result := make([]domain.Customer, 0, len(emails))
	for _, email := range emails {
		customers, err := s.integrator.SearchCustomersByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		result = append(result, customers...)
	}

	return result, nil
}

// ExpiringSubscriptions lista as assinaturas com seus períodos vigentes.
// Com scheduledOnly apenas as que têm cancelamento agendado são retornadas.
func (s *Service) ExpiringSubscriptions(ctx context.Context, scheduledOnly bool) ([]domain.Subscription, error) {
	subscriptions, err := s.integrator.ListSubscriptions(ctx)
	if err != nil {
		return nil, err
	}

	if !scheduledOnly {
		return subscriptions, nil
	}

	expiring := make([]domain.Subscription, 0)
	for _, sub := range subscriptions {
		if sub.Expiring() {
			expiring = append(expiring, sub)
		}
	}

	return expiring, nil
}
