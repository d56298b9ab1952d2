package stripe

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	stripego "github.com/stripe/stripe-go/v82"

	stripedomain "github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/integrator/stripe/domain"
	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/integrator/stripe/stripeclient"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/config"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
)

// Integrator entrega as entidades do Stripe já convertidas para o domínio.
// Todas as operações esgotam a paginação.
type Integrator interface {
	SearchCustomers(ctx context.Context, window domain.TimeWindow) ([]domain.Customer, error)
	SearchCustomersByEmail(ctx context.Context, email string) ([]domain.Customer, error)
	SearchCharges(ctx context.Context, window domain.TimeWindow, customerID string) ([]domain.ChargeEvent, error)
	SearchPaymentIntents(ctx context.Context, window domain.TimeWindow) ([]domain.PaymentIntentEvent, error)
	ListSubscriptions(ctx context.Context) ([]domain.Subscription, error)
	ListEvents(ctx context.Context, window domain.TimeWindow) ([]domain.Event, error)
}

type StripeIntegrator struct {
	Client   stripeclient.Client
	platform string
	loc      *time.Location
}

func New(cfg *config.Config, platform config.Platform, client stripeclient.Client) *StripeIntegrator {
	return &StripeIntegrator{
		Client:   client,
		platform: platform.Name,
		loc:      cfg.Location(),
	}
}

func (s *StripeIntegrator) Platform() string {
	return s.platform
}

func (s *StripeIntegrator) Location() *time.Location {
	return s.loc
}

func (s *StripeIntegrator) windowQuery(window domain.TimeWindow) stripeclient.Query {
	start, end := window.Bounds(s.loc)
	return stripeclient.WindowQuery(start, end)
}

func (s *StripeIntegrator) SearchCustomers(ctx context.Context, window domain.TimeWindow) ([]domain.Customer, error) {
	query := s.windowQuery(window)

	resp, err := stripeclient.FetchAll[stripego.Customer](ctx, stripedomain.ResourceCustomers,
		stripeclient.SearchFetcher(s.Client, stripedomain.ResourceCustomers, query))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform": s.platform,
			"window":   window.Label(),
			"error":    err.Error(),
		}).Error("stripe: falha ao buscar clientes")
		return nil, err
	}

	customers := make([]domain.Customer, 0, len(resp))
	for i := range resp {
		customers = append(customers, FactoryCustomer(&resp[i], s.platform))
	}

	logrus.WithFields(logrus.Fields{
		"platform": s.platform,
		"window":   window.Label(),
		"count":    len(customers),
	}).Debug("stripe: clientes recuperados")

	return customers, nil
}

func (s *StripeIntegrator) SearchCustomersByEmail(ctx context.Context, email string) ([]domain.Customer, error) {
	query, err := stripeclient.Query{}.And("email", email)
	if err != nil {
		return nil, err
	}

	resp, err := stripeclient.FetchAll[stripego.Customer](ctx, stripedomain.ResourceCustomers,
		stripeclient.SearchFetcher(s.Client, stripedomain.ResourceCustomers, query))
	if err != nil {
		return nil, err
	}

	customers := make([]domain.Customer, 0, len(resp))
	for i := range resp {
		customers = append(customers, FactoryCustomer(&resp[i], s.platform))
	}

	return customers, nil
}

// SearchCharges busca as cobranças da janela, opcionalmente restritas a um cliente
func (s *StripeIntegrator) SearchCharges(ctx context.Context, window domain.TimeWindow, customerID string) ([]domain.ChargeEvent, error) {
	query := s.windowQuery(window)
	if customerID != "" {
		var err error
		query, err = query.And("customer", customerID)
		if err != nil {
			return nil, err
		}
	}

	resp, err := stripeclient.FetchAll[stripego.Charge](ctx, stripedomain.ResourceCharges,
		stripeclient.SearchFetcher(s.Client, stripedomain.ResourceCharges, query))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform":    s.platform,
			"window":      window.Label(),
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("stripe: falha ao buscar cobranças")
		return nil, err
	}

	charges := make([]domain.ChargeEvent, 0, len(resp))
	for i := range resp {
		charges = append(charges, FactoryChargeEvent(&resp[i]))
	}

	return charges, nil
}

func (s *StripeIntegrator) SearchPaymentIntents(ctx context.Context, window domain.TimeWindow) ([]domain.PaymentIntentEvent, error) {
	query := s.windowQuery(window)

	resp, err := stripeclient.FetchAll[stripego.PaymentIntent](ctx, stripedomain.ResourcePaymentIntents,
		stripeclient.SearchFetcher(s.Client, stripedomain.ResourcePaymentIntents, query))
	if err != nil {
		return nil, err
	}

	intents := make([]domain.PaymentIntentEvent, 0, len(resp))
	for i := range resp {
		intent := FactoryPaymentIntent(&resp[i])
		// Intents sem cliente (checkout anônimo) não entram no relatório
		if intent.CustomerID == "" {
			logrus.WithField("payment_intent_id", intent.ID).Debug("stripe: payment intent sem cliente ignorado")
			continue
		}
		intents = append(intents, intent)
	}

	return intents, nil
}

func (s *StripeIntegrator) ListSubscriptions(ctx context.Context) ([]domain.Subscription, error) {
	params := url.Values{}
	params.Set("status", "all")

	resp, err := stripeclient.FetchAll[stripedomain.Subscription](ctx, stripedomain.ResourceSubscriptions,
		stripeclient.ListFetcher(s.Client, stripedomain.ResourceSubscriptions, params))
	if err != nil {
		return nil, err
	}

	subscriptions := make([]domain.Subscription, 0, len(resp))
	for i := range resp {
		subscriptions = append(subscriptions, FactorySubscription(&resp[i]))
	}

	return subscriptions, nil
}

func (s *StripeIntegrator) ListEvents(ctx context.Context, window domain.TimeWindow) ([]domain.Event, error) {
	start, end := window.Bounds(s.loc)

	params := url.Values{}
	params.Set("created[gt]", strconv.FormatInt(start, 10))
	params.Set("created[lt]", strconv.FormatInt(end, 10))

	resp, err := stripeclient.FetchAll[stripego.Event](ctx, stripedomain.ResourceEvents,
		stripeclient.ListFetcher(s.Client, stripedomain.ResourceEvents, params))
	if err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(resp))
	for i := range resp {
		events = append(events, domain.Event{
			ID:        resp[i].ID,
			Type:      string(resp[i].Type),
			CreatedAt: resp[i].Created,
		})
	}

	return events, nil
}
