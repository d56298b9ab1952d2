package utils

// CentsToDollars converte a menor unidade monetária do Stripe para dólares
func CentsToDollars(cents int64) float64 {
	return float64(cents) / 100
}
