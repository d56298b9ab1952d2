// Package exportertest monta relatórios de exemplo para os testes dos exportadores
package exportertest

import (
	"time"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
)

func Window() domain.TimeWindow {
	return domain.TimeWindow{
		Start: domain.CalendarDate{Year: 2024, Month: time.January, Day: 1},
		End:   domain.CalendarDate{Year: 2024, Month: time.January, Day: 15},
	}
}

func PreviousWindow() domain.TimeWindow {
	return domain.PreviousWindow(Window(), 14)
}

// Report devolve um relatório com totais calculados nas tabelas
func Report() *domain.Report {
	email := "a@x.com"

	clients := domain.NewTable("clients", domain.Column{Name: "platform"}, domain.Column{Name: "customer_id"}, domain.Column{Name: "email"})
	clients.AddRow("KAHUNAS", "cus_a", &email)
	clients.AddRow("KAHUNAS", "cus_b", nil)
	clients.AppendCountTotals()

	charges := domain.NewTable("charges", domain.Column{Name: "charge_id"}, domain.Column{Name: "amount_captured", Kind: domain.ColumnNumber})
	charges.AddRow("ch_1", 50.0)
	charges.AddRow("ch_2", 19.99)
	charges.AppendSumTotals()

	empty := domain.NewTable("empty", domain.Column{Name: "charge_id"}, domain.Column{Name: "amount_captured", Kind: domain.ColumnNumber})
	empty.AppendSumTotals()

	return &domain.Report{
		Platform:        domain.PlatformNameKahunas,
		CurrentWindow:   Window(),
		PreviousWindow:  PreviousWindow(),
		CurrentClients:  clients,
		PreviousClients: domain.NewTable("previous", domain.Column{Name: "platform"}),
		CurrentCharges:  charges,
		PreviousCharges: empty,
		CurrentLedgers: []domain.CustomerLedger{
			{
				CustomerID:        "cus_a",
				CustomerEmail:     email,
				ChargeCount:       2,
				SuccessfulCharges: []domain.ChargeTuple{{ChargeID: "ch_1", AmountCaptured: 50}},
				FailedCharges:     []domain.ChargeTuple{{ChargeID: "ch_2"}},
			},
		},
		PreviousLedgers: []domain.CustomerLedger{},
		CurrentRevenue:  69.99,
		Warnings: []domain.PartialAggregationWarning{
			{Table: "charges", Column: "amount_captured", Row: 3, Value: "n/a", Reason: "valor não numérico ignorado na soma"},
		},
	}
}
