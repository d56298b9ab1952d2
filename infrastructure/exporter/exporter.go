// Package exporter reúne o que os formatos de exportação compartilham
package exporter

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
)

const (
	FormatXLSX    = "xlsx"
	FormatCSV     = "csv"
	FormatPDF     = "pdf"
	FormatArchive = "archive"
)

// NamedTable associa uma tabela ao nome da sua aba
type NamedTable struct {
	Sheet string
	Table *domain.Table
}

// Sheets devolve as quatro tabelas do relatório com os nomes de aba ccl, pcl, cch e pch
func Sheets(report *domain.Report) []NamedTable {
	return []NamedTable{
		{Sheet: domain.SheetName(report.CurrentWindow, domain.SheetCurrentClients), Table: report.CurrentClients},
		{Sheet: domain.SheetName(report.PreviousWindow, domain.SheetPreviousClients), Table: report.PreviousClients},
		{Sheet: domain.SheetName(report.CurrentWindow, domain.SheetCurrentCharges), Table: report.CurrentCharges},
		{Sheet: domain.SheetName(report.PreviousWindow, domain.SheetPreviousCharges), Table: report.PreviousCharges},
	}
}

// ArtifactPath monta <dir>/<período>_<PLATAFORMA>_weekly_report.<ext> e garante o diretório
func ArtifactPath(dir string, report *domain.Report, ext string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, report.ArtifactName()+"."+ext), nil
}

// Value desreferencia ponteiros para que o valor possa ir direto para a célula
func Value(v any) any {
	if s, ok := v.(*string); ok {
		if s == nil {
			return nil
		}
		return *s
	}
	return v
}

// Records converte a tabela em linhas de texto. A primeira coluna é o índice,
// que na linha de totais recebe o rótulo.
func Records(table *domain.Table) [][]string {
	if table == nil {
		return [][]string{}
	}

	records := make([][]string, 0, len(table.Rows)+2)
	records = append(records, append([]string{""}, table.ColumnNames()...))

	for i, row := range table.Rows {
		records = append(records, textRow(strconv.Itoa(i), row))
	}

	if table.Totals != nil {
		records = append(records, textRow(table.Totals.Label, table.Totals.Values))
	}

	return records
}

func textRow(index string, values []any) []string {
	out := make([]string, 0, len(values)+1)
	out = append(out, index)
	for _, v := range values {
		out = append(out, domain.Cell(v))
	}
	return out
}
