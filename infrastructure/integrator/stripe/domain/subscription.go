package stripedomain

// Subscription decodifica a assinatura aceitando os períodos no topo ou nos itens,
// já que versões recentes da API moveram current_period_* para os itens.
type Subscription struct {
	ID                 string            `json:"id"`
	Customer           ExpandableID      `json:"customer"`
	Status             string            `json:"status"`
	CurrentPeriodStart int64             `json:"current_period_start"`
	CurrentPeriodEnd   int64             `json:"current_period_end"`
	CancelAt           *int64            `json:"cancel_at"`
	Items              SubscriptionItems `json:"items"`
}

type SubscriptionItems struct {
	Data []SubscriptionItem `json:"data"`
}

type SubscriptionItem struct {
	ID                 string `json:"id"`
	CurrentPeriodStart int64  `json:"current_period_start"`
	CurrentPeriodEnd   int64  `json:"current_period_end"`
}

// PeriodStart retorna o início do período vigente
func (s *Subscription) PeriodStart() int64 {
	if s.CurrentPeriodStart == 0 && len(s.Items.Data) > 0 {
		return s.Items.Data[0].CurrentPeriodStart
	}
	return s.CurrentPeriodStart
}

func (s *Subscription) PeriodEnd() int64 {
	if s.CurrentPeriodEnd == 0 && len(s.Items.Data) > 0 {
		return s.Items.Data[0].CurrentPeriodEnd
	}
	return s.CurrentPeriodEnd
}
