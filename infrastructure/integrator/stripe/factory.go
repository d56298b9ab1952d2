package stripe

import (
	stripego "github.com/stripe/stripe-go/v82"

	stripedomain "github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/integrator/stripe/domain"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
)

func FactoryCustomer(c *stripego.Customer, platform string) domain.Customer {
	customer := domain.Customer{
		ID:        c.ID,
		CreatedAt: c.Created,
		Platform:  platform,
	}

	if c.Email != "" {
		email := c.Email
		customer.Email = &email
	}

	return customer
}

func FactoryChargeEvent(c *stripego.Charge) domain.ChargeEvent {
	charge := domain.ChargeEvent{
		ID:              c.ID,
		ReceiptEmail:    c.ReceiptEmail,
		Status:          domain.ChargeStatus(c.Status),
		CreatedAt:       c.Created,
		AmountRequested: c.Amount,
		AmountCaptured:  c.AmountCaptured,
		Description:     c.Description,
	}

	if c.Customer != nil {
		charge.CustomerID = c.Customer.ID
	}

	return charge
}

func FactoryPaymentIntent(p *stripego.PaymentIntent) domain.PaymentIntentEvent {
	intent := domain.PaymentIntentEvent{
		ID:             p.ID,
		Email:          p.ReceiptEmail,
		Description:    p.Description,
		CreatedAt:      p.Created,
		AmountReceived: p.AmountReceived,
	}

	if p.Customer != nil {
		intent.CustomerID = p.Customer.ID
	}

	return intent
}

func FactorySubscription(s *stripedomain.Subscription) domain.Subscription {
	return domain.Subscription{
		ID:                 s.ID,
		CustomerID:         string(s.Customer),
		Status:             s.Status,
		CurrentPeriodStart: s.PeriodStart(),
		CurrentPeriodEnd:   s.PeriodEnd(),
		CancelAt:           s.CancelAt,
	}
}
