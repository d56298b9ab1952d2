package stripedomain

import (
	"encoding/json"

	"github.com/stripe/stripe-go/v82"
)

const (
	ResourceCustomers      = "customers"
	ResourceCharges        = "charges"
	ResourcePaymentIntents = "payment_intents"
	ResourceSubscriptions  = "subscriptions"
	ResourceEvents         = "events"
)

// Page é o envelope comum das respostas de busca e listagem do Stripe
type Page struct {
	stripe.APIResource
	Object   string            `json:"object"`
	URL      string            `json:"url"`
	Data     []json.RawMessage `json:"data"`
	HasMore  bool              `json:"has_more"`
	NextPage string            `json:"next_page"`
}

// Object é usado para extrair apenas o id de um item serializado
type Object struct {
	ID string `json:"id"`
}

var SearchableResources = map[string]bool{
	ResourceCustomers:      true,
	ResourceCharges:        true,
	ResourcePaymentIntents: true,
}

var ListableResources = map[string]bool{
	ResourceSubscriptions: true,
	ResourceEvents:        true,
}
