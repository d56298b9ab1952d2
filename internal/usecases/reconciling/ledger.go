package reconciling

import (
	"math"
	"time"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/utils"
)

const ledgerTable = "ledgers"

// BuildLedgers agrupa as cobranças por cliente na ordem em que cada cliente aparece.
// Status fora de succeeded/failed contam para o cliente mas não entram em nenhuma lista.
func BuildLedgers(charges []domain.ChargeEvent, loc *time.Location) ([]domain.CustomerLedger, []domain.PartialAggregationWarning) {
	var warnings []domain.PartialAggregationWarning

	ledgers := make([]domain.CustomerLedger, 0)
	index := map[string]int{}

	for i, charge := range charges {
		if charge.CustomerID == "" {
			warnings = append(warnings, domain.PartialAggregationWarning{
				Table:  ledgerTable,
				Column: "customer_id",
				Row:    i,
				Value:  charge.ID,
				Reason: "cobrança sem cliente excluída dos ledgers",
			})
			continue
		}

		pos, ok := index[charge.CustomerID]
		if !ok {
			pos = len(ledgers)
			index[charge.CustomerID] = pos
			ledgers = append(ledgers, newLedger(charge.CustomerID))
		}

		ledger := &ledgers[pos]
		ledger.ChargeCount++
		if ledger.CustomerEmail == "" {
			ledger.CustomerEmail = charge.ReceiptEmail
		}

		switch charge.Status {
		case domain.ChargeStatusSucceeded:
			ledger.SuccessfulCharges = append(ledger.SuccessfulCharges, NewChargeTuple(charge, loc))
		case domain.ChargeStatusFailed:
			ledger.FailedCharges = append(ledger.FailedCharges, NewChargeTuple(charge, loc))
		}
	}

	return ledgers, warnings
}

func newLedger(customerID string) domain.CustomerLedger {
	return domain.CustomerLedger{
		CustomerID:        customerID,
		SuccessfulCharges: []domain.ChargeTuple{},
		FailedCharges:     []domain.ChargeTuple{},
	}
}

// NewChargeTuple converte os valores para dólares no momento da construção
func NewChargeTuple(charge domain.ChargeEvent, loc *time.Location) domain.ChargeTuple {
	return domain.ChargeTuple{
		ChargeID:        charge.ID,
		CreatedAt:       utils.EpochToHuman(charge.CreatedAt, loc),
		AmountRequested: utils.CentsToDollars(charge.AmountRequested),
		AmountCaptured:  utils.CentsToDollars(charge.AmountCaptured),
	}
}

// SumRevenue soma o valor capturado das cobranças bem-sucedidas, ignorando valores não finitos
func SumRevenue(ledgers []domain.CustomerLedger) (float64, []domain.PartialAggregationWarning) {
	var warnings []domain.PartialAggregationWarning
	total := 0.0

	for _, ledger := range ledgers {
		for i, tuple := range ledger.SuccessfulCharges {
			if math.IsNaN(tuple.AmountCaptured) || math.IsInf(tuple.AmountCaptured, 0) {
				warnings = append(warnings, domain.PartialAggregationWarning{
					Table:  ledgerTable,
					Column: "amount_captured",
					Row:    i,
					Value:  tuple.ChargeID,
					Reason: "valor capturado não numérico ignorado na receita",
				})
				continue
			}
			total += tuple.AmountCaptured
		}
	}

	return utils.RoundWithTwoDecimalPlace(total), warnings
}
