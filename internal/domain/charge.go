package domain

type ChargeStatus string

const (
	ChargeStatusSucceeded ChargeStatus = "succeeded"
	ChargeStatusFailed    ChargeStatus = "failed"
	ChargeStatusPending   ChargeStatus = "pending"
)

type ChargeEvent struct {
	ID              string       `json:"id"`
	CustomerID      string       `json:"customer_id"`
	ReceiptEmail    string       `json:"receipt_email"`
	Status          ChargeStatus `json:"status"`
	CreatedAt       int64        `json:"created_at"`
	AmountRequested int64        `json:"amount_requested"`
	AmountCaptured  int64        `json:"amount_captured"`
	Description     string       `json:"description"`
}

// ChargeTuple é a visão convertida para dólares de uma cobrança dentro de um ledger
type ChargeTuple struct {
	ChargeID        string  `json:"charge_id"`
	CreatedAt       string  `json:"created_at"`
	AmountRequested float64 `json:"amount_requested"`
	AmountCaptured  float64 `json:"amount_captured"`
}

// CustomerLedger sempre traz as duas listas, vazias quando não há cobranças no status
type CustomerLedger struct {
	CustomerID        string        `json:"customer_id"`
	CustomerEmail     string        `json:"customer_email"`
	ChargeCount       int           `json:"charge_count"`
	SuccessfulCharges []ChargeTuple `json:"successful_charges"`
	FailedCharges     []ChargeTuple `json:"failed_charges"`
}

type LedgerResult struct {
	Window   TimeWindow                  `json:"window"`
	Ledgers  []CustomerLedger            `json:"ledgers"`
	Warnings []PartialAggregationWarning `json:"warnings,omitempty"`
}

type RevenueResult struct {
	Window   TimeWindow                  `json:"window"`
	Revenue  float64                     `json:"revenue"`
	Warnings []PartialAggregationWarning `json:"warnings,omitempty"`
}
