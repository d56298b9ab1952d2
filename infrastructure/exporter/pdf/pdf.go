package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"

	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/exporter"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
)

var (
	colorPrimary     = [3]int{30, 58, 95}
	colorTextDark    = [3]int{44, 62, 80}
	colorTextMuted   = [3]int{127, 140, 141}
	colorTableHeader = [3]int{30, 58, 95}
	colorTableAlt    = [3]int{241, 245, 249}
)

// Exporter gera um resumo em PDF com os indicadores dos dois períodos e os extratos por cliente
type Exporter struct {
	dir string
}

func New(dir string) *Exporter {
	return &Exporter{dir: dir}
}

func (e *Exporter) Format() string {
	return exporter.FormatPDF
}

func (e *Exporter) Export(ctx context.Context, report *domain.Report) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content, err := Render(report)
	if err != nil {
		return "", err
	}

	path, err := exporter.ArtifactPath(e.dir, report, exporter.FormatPDF)
	if err != nil {
		return "", fmt.Errorf("erro ao preparar diretório de exportação: %w", err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("erro ao salvar %s: %w", path, err)
	}

	return path, nil
}

// Render monta o documento em memória
func Render(report *domain.Report) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(true, 25)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.AddPage()
	writeHeader(doc, report)
	writeSummary(doc, report)

	writeLedgers(doc, tr, "Current period ledgers", report.CurrentLedgers)
	writeLedgers(doc, tr, "Previous period ledgers", report.PreviousLedgers)

	if len(report.Warnings) > 0 {
		writeWarnings(doc, tr, report.Warnings)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("erro ao gerar PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func writeHeader(doc *fpdf.Fpdf, report *domain.Report) {
	pageWidth, _ := doc.GetPageSize()

	doc.SetFillColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	doc.Rect(0, 0, pageWidth, 8, "F")

	doc.SetY(18)
	doc.SetFont("Arial", "B", 20)
	doc.SetTextColor(colorTextDark[0], colorTextDark[1], colorTextDark[2])
	doc.CellFormat(0, 10, "Weekly billing report", "", 1, "L", false, 0, "")

	doc.SetFont("Arial", "", 10)
	doc.SetTextColor(colorTextMuted[0], colorTextMuted[1], colorTextMuted[2])
	doc.CellFormat(0, 6, report.Platform, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, fmt.Sprintf("Current: %s   Previous: %s", report.CurrentWindow, report.PreviousWindow), "", 1, "L", false, 0, "")
	doc.Ln(6)
}

func writeSummary(doc *fpdf.Fpdf, report *domain.Report) {
	rows := [][]string{
		{"New clients", fmt.Sprint(clientCount(report.CurrentClients)), fmt.Sprint(clientCount(report.PreviousClients))},
		{"Duplicate clients", fmt.Sprint(len(report.CurrentDuplicates)), fmt.Sprint(len(report.PreviousDuplicates))},
		{"Charges", fmt.Sprint(rowCount(report.CurrentCharges)), fmt.Sprint(rowCount(report.PreviousCharges))},
		{"Customers charged", fmt.Sprint(len(report.CurrentLedgers)), fmt.Sprint(len(report.PreviousLedgers))},
		{"Revenue", fmt.Sprintf("$%.2f", report.CurrentRevenue), fmt.Sprintf("$%.2f", report.PreviousRevenue)},
	}

	writeTable(doc, []string{"Metric", "Current", "Previous"}, []float64{70, 50, 50}, rows)
	doc.Ln(8)
}

func writeLedgers(doc *fpdf.Fpdf, tr func(string) string, title string, ledgers []domain.CustomerLedger) {
	writeSection(doc, title)

	if len(ledgers) == 0 {
		doc.SetFont("Arial", "I", 9)
		doc.CellFormat(0, 6, "No charges in this period", "", 1, "L", false, 0, "")
		doc.Ln(4)
		return
	}

	rows := make([][]string, 0, len(ledgers))
	for _, l := range ledgers {
		captured := 0.0
		for _, c := range l.SuccessfulCharges {
			captured += c.AmountCaptured
		}
		rows = append(rows, []string{
			l.CustomerID,
			tr(l.CustomerEmail),
			fmt.Sprint(l.ChargeCount),
			fmt.Sprint(len(l.FailedCharges)),
			fmt.Sprintf("$%.2f", captured),
		})
	}

	writeTable(doc, []string{"Customer", "Email", "Charges", "Failed", "Captured"}, []float64{40, 60, 20, 20, 30}, rows)
	doc.Ln(6)
}

func writeWarnings(doc *fpdf.Fpdf, tr func(string) string, warnings []domain.PartialAggregationWarning) {
	writeSection(doc, "Aggregation warnings")

	doc.SetFont("Arial", "", 8)
	doc.SetTextColor(colorTextDark[0], colorTextDark[1], colorTextDark[2])
	for _, w := range warnings {
		doc.MultiCell(0, 5, tr(w.Error()), "", "L", false)
	}
}

func writeSection(doc *fpdf.Fpdf, title string) {
	if doc.GetY() > 240 {
		doc.AddPage()
	}
	doc.SetFont("Arial", "B", 13)
	doc.SetTextColor(colorTextDark[0], colorTextDark[1], colorTextDark[2])
	doc.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func writeTable(doc *fpdf.Fpdf, header []string, widths []float64, rows [][]string) {
	doc.SetFont("Arial", "B", 9)
	doc.SetFillColor(colorTableHeader[0], colorTableHeader[1], colorTableHeader[2])
	doc.SetTextColor(255, 255, 255)
	for i, h := range header {
		doc.CellFormat(widths[i], 7, h, "", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Arial", "", 9)
	doc.SetTextColor(colorTextDark[0], colorTextDark[1], colorTextDark[2])
	doc.SetFillColor(colorTableAlt[0], colorTableAlt[1], colorTableAlt[2])
	for r, row := range rows {
		for i, v := range row {
			doc.CellFormat(widths[i], 6, v, "", 0, "L", r%2 == 1, 0, "")
		}
		doc.Ln(-1)
	}
}

func rowCount(t *domain.Table) int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// clientCount usa a linha de totais quando presente, que conta apenas ids não nulos
func clientCount(t *domain.Table) int {
	if t == nil {
		return 0
	}
	if t.Totals != nil {
		for i, c := range t.Columns {
			if c.Name == "customer_id" {
				if n, ok := t.Totals.Values[i].(int); ok {
					return n
				}
			}
		}
	}
	return len(t.Rows)
}
