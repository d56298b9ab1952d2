package domain

import (
	"fmt"
	"math"
)

type ColumnKind int

const (
	ColumnText ColumnKind = iota
	ColumnNumber
)

const (
	TotalsLabelCount = "count_totals"
	TotalsLabelSum   = "sum_totals"
)

type Column struct {
	Name string     `json:"name"`
	Kind ColumnKind `json:"kind"`
}

// TotalsRow é a linha sintética anexada ao final da tabela
type TotalsRow struct {
	Label  string `json:"label"`
	Values []any  `json:"values"`
}

type Table struct {
	Name    string     `json:"name"`
	Columns []Column   `json:"columns"`
	Rows    [][]any    `json:"rows"`
	Totals  *TotalsRow `json:"totals,omitempty"`
}

func NewTable(name string, columns ...Column) *Table {
	return &Table{Name: name, Columns: columns, Rows: [][]any{}}
}

func (t *Table) AddRow(values ...any) {
	t.Rows = append(t.Rows, values)
}

func (t *Table) HasNumericColumn() bool {
	for _, c := range t.Columns {
		if c.Kind == ColumnNumber {
			return true
		}
	}
	return false
}

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// AppendCountTotals conta os valores não nulos de cada coluna
func (t *Table) AppendCountTotals() {
	values := make([]any, len(t.Columns))
	for i := range t.Columns {
		count := 0
		for _, row := range t.Rows {
			if i < len(row) && !isNull(row[i]) {
				count++
			}
		}
		values[i] = count
	}

	t.Totals = &TotalsRow{Label: TotalsLabelCount, Values: values}
}

// AppendSumTotals soma as colunas numéricas; células não numéricas viram avisos.
// Tabelas sem coluna numérica ficam sem linha de totais.
func (t *Table) AppendSumTotals() []PartialAggregationWarning {
	if !t.HasNumericColumn() {
		return nil
	}

	var warnings []PartialAggregationWarning
	values := make([]any, len(t.Columns))

	for i, col := range t.Columns {
		if col.Kind != ColumnNumber {
			values[i] = nil
			continue
		}

		sum := 0.0
		for r, row := range t.Rows {
			if i >= len(row) {
				continue
			}

			v, ok := ToFloat(row[i])
			if !ok {
				warnings = append(warnings, PartialAggregationWarning{
					Table:  t.Name,
					Column: col.Name,
					Row:    r,
					Value:  row[i],
					Reason: "valor não numérico ignorado na soma",
				})
				continue
			}
			sum += v
		}
		values[i] = math.Round(sum*100) / 100
	}

	t.Totals = &TotalsRow{Label: TotalsLabelSum, Values: values}
	return warnings
}

// ToFloat aceita apenas números finitos
func ToFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func isNull(v any) bool {
	switch s := v.(type) {
	case nil:
		return true
	case *string:
		return s == nil
	case string:
		return s == ""
	}
	return false
}

// Cell formata um valor para exportação em texto
func Cell(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case *string:
		if s == nil {
			return ""
		}
		return *s
	case float64:
		return fmt.Sprintf("%.2f", s)
	}
	return fmt.Sprint(v)
}
