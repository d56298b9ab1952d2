package csvexport

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/exporter"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
)

// Exporter grava as quatro tabelas em um único CSV, separadas por seções
type Exporter struct {
	dir string
}

func New(dir string) *Exporter {
	return &Exporter{dir: dir}
}

func (e *Exporter) Format() string {
	return exporter.FormatCSV
}

func (e *Exporter) Export(ctx context.Context, report *domain.Report) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := exporter.ArtifactPath(e.dir, report, exporter.FormatCSV)
	if err != nil {
		return "", fmt.Errorf("erro ao preparar diretório de exportação: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("erro ao criar %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := writeReport(w, report); err != nil {
		return "", err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("erro ao gravar CSV: %w", err)
	}

	return path, nil
}

func writeReport(w *csv.Writer, report *domain.Report) error {
	header := [][]string{
		{"# Platform:", report.Platform},
		{"# Current period:", report.CurrentWindow.String()},
		{"# Previous period:", report.PreviousWindow.String()},
		{""},
	}
	if err := w.WriteAll(header); err != nil {
		return fmt.Errorf("erro ao gravar cabeçalho: %w", err)
	}

	for _, named := range exporter.Sheets(report) {
		if err := w.Write([]string{"# " + named.Sheet}); err != nil {
			return fmt.Errorf("erro ao gravar seção %s: %w", named.Sheet, err)
		}
		for _, record := range exporter.Records(named.Table) {
			if err := w.Write(record); err != nil {
				return fmt.Errorf("erro ao gravar seção %s: %w", named.Sheet, err)
			}
		}
		if err := w.Write([]string{""}); err != nil {
			return err
		}
	}

	return nil
}
