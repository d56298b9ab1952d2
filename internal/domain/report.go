package domain

import "fmt"

const (
	PlatformNameKahunas        = "KAHUNAS"
	PlatformNameStudioBookings = "STUDIO_BOOKINGS"
)

// Report não carrega identificador nem horário de geração, o mesmo upstream produz o mesmo relatório
type Report struct {
	Platform           string                      `json:"platform"`
	CurrentWindow      TimeWindow                  `json:"current_window"`
	PreviousWindow     TimeWindow                  `json:"previous_window"`
	CurrentClients     *Table                      `json:"current_clients"`
	PreviousClients    *Table                      `json:"previous_clients"`
	CurrentCharges     *Table                      `json:"current_charges"`
	PreviousCharges    *Table                      `json:"previous_charges"`
	CurrentDuplicates  []Customer                  `json:"current_duplicates"`
	PreviousDuplicates []Customer                  `json:"previous_duplicates"`
	CurrentLedgers     []CustomerLedger            `json:"current_ledgers"`
	PreviousLedgers    []CustomerLedger            `json:"previous_ledgers"`
	CurrentRevenue     float64                     `json:"current_revenue"`
	PreviousRevenue    float64                     `json:"previous_revenue"`
	Warnings           []PartialAggregationWarning `json:"warnings,omitempty"`
}

// ArtifactName segue o padrão <inicio>_to_<fim>_<PLATAFORMA>_weekly_report
func (r *Report) ArtifactName() string {
	return fmt.Sprintf("%s_%s_weekly_report", r.CurrentWindow.Label(), r.Platform)
}

// Tables retorna as quatro tabelas na ordem de exportação
func (r *Report) Tables() []*Table {
	return []*Table{r.CurrentClients, r.PreviousClients, r.CurrentCharges, r.PreviousCharges}
}

const (
	SheetCurrentClients  = "ccl"
	SheetPreviousClients = "pcl"
	SheetCurrentCharges  = "cch"
	SheetPreviousCharges = "pch"
)

// SheetName gera o nome da aba, por exemplo 20240115_to_20240129ccl
func SheetName(w TimeWindow, suffix string) string {
	return w.Label() + suffix
}
