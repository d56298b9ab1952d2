package domain

type PaymentIntentEvent struct {
	ID             string `json:"id"`
	CustomerID     string `json:"customer_id"`
	Email          string `json:"email"`
	Description    string `json:"description"`
	CreatedAt      int64  `json:"created_at"`
	AmountReceived int64  `json:"amount_received"`
}
