package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/exporter"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
)

const defaultSheet = "Sheet1"

// Exporter grava o relatório em uma pasta de trabalho com uma aba por tabela
type Exporter struct {
	dir string
}

func New(dir string) *Exporter {
	return &Exporter{dir: dir}
}

func (e *Exporter) Format() string {
	return exporter.FormatXLSX
}

func (e *Exporter) Export(ctx context.Context, report *domain.Report) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := exporter.ArtifactPath(e.dir, report, exporter.FormatXLSX)
	if err != nil {
		return "", fmt.Errorf("erro ao preparar diretório de exportação: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for _, named := range exporter.Sheets(report) {
		if _, err := f.NewSheet(named.Sheet); err != nil {
			return "", fmt.Errorf("erro ao criar aba %s: %w", named.Sheet, err)
		}
		if err := writeTable(f, named.Sheet, named.Table); err != nil {
			return "", fmt.Errorf("erro ao preencher aba %s: %w", named.Sheet, err)
		}
	}

	if err := f.DeleteSheet(defaultSheet); err != nil {
		return "", err
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("erro ao salvar %s: %w", path, err)
	}

	return path, nil
}

func writeTable(f *excelize.File, sheet string, table *domain.Table) error {
	if table == nil {
		return nil
	}

	header := make([]any, 0, len(table.Columns)+1)
	header = append(header, "")
	for _, name := range table.ColumnNames() {
		header = append(header, name)
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, row := range table.Rows {
		if err := setRow(f, sheet, i+2, cells(i, row)); err != nil {
			return err
		}
	}

	if table.Totals != nil {
		values := append([]any{table.Totals.Label}, convert(table.Totals.Values)...)
		if err := setRow(f, sheet, len(table.Rows)+2, values); err != nil {
			return err
		}
	}

	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func cells(index int, row []any) []any {
	return append([]any{index}, convert(row)...)
}

func convert(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = exporter.Value(v)
	}
	return out
}
