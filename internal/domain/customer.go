package domain

type Customer struct {
	ID        string  `json:"id"`
	Email     *string `json:"email"`
	CreatedAt int64   `json:"created_at"`
	Platform  string  `json:"platform"`
}

// EmailKey é a chave de identidade usada na deduplicação de clientes
func (c Customer) EmailKey() (string, bool) {
	if c.Email == nil || *c.Email == "" {
		return "", false
	}
	return *c.Email, true
}

type NewClientsResult struct {
	Window     TimeWindow `json:"window"`
	Unique     []Customer `json:"unique"`
	Duplicates []Customer `json:"duplicates"`
}
