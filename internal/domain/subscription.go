package domain

type Subscription struct {
	ID                 string `json:"id"`
	CustomerID         string `json:"customer_id"`
	Status             string `json:"status"`
	CurrentPeriodStart int64  `json:"current_period_start"`
	CurrentPeriodEnd   int64  `json:"current_period_end"`
	CancelAt           *int64 `json:"cancel_at"`
}

// Expiring indica se a assinatura tem cancelamento agendado
func (s Subscription) Expiring() bool {
	return s.CancelAt != nil && *s.CancelAt > 0
}
