package reporting

import (
	"time"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/utils"
)

var clientColumns = []domain.Column{
	{Name: "platform", Kind: domain.ColumnText},
	{Name: "customer_id", Kind: domain.ColumnText},
	{Name: "email", Kind: domain.ColumnText},
	{Name: "created", Kind: domain.ColumnText},
}

var chargeColumns = []domain.Column{
	{Name: "charge_id", Kind: domain.ColumnText},
	{Name: "status", Kind: domain.ColumnText},
	{Name: "charge_date", Kind: domain.ColumnText},
	{Name: "customer_id", Kind: domain.ColumnText},
	{Name: "receipt_email", Kind: domain.ColumnText},
	{Name: "description", Kind: domain.ColumnText},
	{Name: "amount_captured", Kind: domain.ColumnNumber},
}

// ClientsTable monta a tabela de novos clientes com a linha de contagem
func ClientsTable(name, platform string, customers []domain.Customer, loc *time.Location) *domain.Table {
	table := domain.NewTable(name, clientColumns...)

	for _, c := range customers {
		var email any
		if c.Email != nil && *c.Email != "" {
			email = *c.Email
		}
		table.AddRow(platform, c.ID, email, utils.EpochToHuman(c.CreatedAt, loc))
	}

	table.AppendCountTotals()
	return table
}

// ChargesTable monta a tabela de cobranças com a linha de somas
func ChargesTable(name string, charges []domain.ChargeEvent, loc *time.Location) (*domain.Table, []domain.PartialAggregationWarning) {
	table := domain.NewTable(name, chargeColumns...)

	for _, c := range charges {
		table.AddRow(
			c.ID,
			string(c.Status),
			utils.EpochToHuman(c.CreatedAt, loc),
			nullable(c.CustomerID),
			nullable(c.ReceiptEmail),
			nullable(c.Description),
			utils.CentsToDollars(c.AmountCaptured),
		)
	}

	warnings := table.AppendSumTotals()
	return table, warnings
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
