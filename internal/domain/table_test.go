package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string {
	return &s
}

func TestTable_AppendCountTotals(t *testing.T) {
	table := NewTable("20240101_to_20240115ccl",
		Column{Name: "platform"},
		Column{Name: "customer_id"},
		Column{Name: "email"},
	)
	table.AddRow("KAHUNAS", "cus_a", stringPtr("a@x.com"))
	table.AddRow("KAHUNAS", "cus_b", (*string)(nil))
	table.AddRow("KAHUNAS", "cus_c", nil)

	table.AppendCountTotals()

	require.NotNil(t, table.Totals)
	assert.Equal(t, TotalsLabelCount, table.Totals.Label)
	assert.Equal(t, []any{3, 3, 1}, table.Totals.Values)
}

func TestTable_AppendSumTotals(t *testing.T) {
	tests := []struct {
		name     string
		table    func() *Table
		validate func(t *testing.T, table *Table, warnings []PartialAggregationWarning)
	}{
		{
			name: "soma as colunas numéricas",
			table: func() *Table {
				table := NewTable("cch", Column{Name: "charge_id"}, Column{Name: "amount", Kind: ColumnNumber})
				table.AddRow("ch_1", 50.0)
				table.AddRow("ch_2", 19.99)
				return table
			},
			validate: func(t *testing.T, table *Table, warnings []PartialAggregationWarning) {
				assert.Empty(t, warnings)
				require.NotNil(t, table.Totals)
				assert.Equal(t, TotalsLabelSum, table.Totals.Label)
				assert.Equal(t, []any{nil, 69.99}, table.Totals.Values)
			},
		},
		{
			name: "valores não numéricos viram avisos",
			table: func() *Table {
				table := NewTable("cch", Column{Name: "amount", Kind: ColumnNumber})
				table.AddRow(10.0)
				table.AddRow("n/a")
				table.AddRow(math.NaN())
				return table
			},
			validate: func(t *testing.T, table *Table, warnings []PartialAggregationWarning) {
				require.Len(t, warnings, 2)
				assert.Equal(t, 1, warnings[0].Row)
				assert.Equal(t, "amount", warnings[0].Column)
				assert.Equal(t, 2, warnings[1].Row)
				assert.Equal(t, []any{10.0}, table.Totals.Values)
			},
		},
		{
			name: "sem coluna numérica não há totais",
			table: func() *Table {
				table := NewTable("cch", Column{Name: "charge_id"})
				table.AddRow("ch_1")
				return table
			},
			validate: func(t *testing.T, table *Table, warnings []PartialAggregationWarning) {
				assert.Nil(t, warnings)
				assert.Nil(t, table.Totals)
			},
		},
		{
			name: "tabela vazia soma zero",
			table: func() *Table {
				return NewTable("pch", Column{Name: "amount", Kind: ColumnNumber})
			},
			validate: func(t *testing.T, table *Table, warnings []PartialAggregationWarning) {
				assert.Empty(t, warnings)
				assert.Equal(t, []any{0.0}, table.Totals.Values)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := tt.table()
			warnings := table.AppendSumTotals()
			tt.validate(t, table, warnings)
		})
	}
}

func TestCell(t *testing.T) {
	assert.Equal(t, "", Cell(nil))
	assert.Equal(t, "", Cell((*string)(nil)))
	assert.Equal(t, "a@x.com", Cell(stringPtr("a@x.com")))
	assert.Equal(t, "19.99", Cell(19.99))
	assert.Equal(t, "3", Cell(3))
}

func TestReport_Names(t *testing.T) {
	w, err := ResolveWindowAt("20240101", "20240115", referenceNow)
	require.NoError(t, err)

	report := &Report{Platform: PlatformNameKahunas, CurrentWindow: w}

	assert.Equal(t, "20240101_to_20240115_KAHUNAS_weekly_report", report.ArtifactName())
	assert.Equal(t, "20240101_to_20240115ccl", SheetName(w, SheetCurrentClients))
}
