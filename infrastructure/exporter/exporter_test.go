package exporter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/exporter"
	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/exporter/exportertest"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
)

func TestSheets(t *testing.T) {
	sheets := exporter.Sheets(exportertest.Report())

	names := make([]string, 0, len(sheets))
	for _, s := range sheets {
		names = append(names, s.Sheet)
	}

	assert.Equal(t, []string{
		"20240101_to_20240115ccl",
		"20231218_to_20240101pcl",
		"20240101_to_20240115cch",
		"20231218_to_20240101pch",
	}, names)
}

func TestArtifactPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	path, err := exporter.ArtifactPath(dir, exportertest.Report(), exporter.FormatXLSX)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "20240101_to_20240115_KAHUNAS_weekly_report.xlsx"), path)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRecords(t *testing.T) {
	report := exportertest.Report()

	assert.Equal(t, [][]string{
		{"", "platform", "customer_id", "email"},
		{"0", "KAHUNAS", "cus_a", "a@x.com"},
		{"1", "KAHUNAS", "cus_b", ""},
		{domain.TotalsLabelCount, "2", "2", "1"},
	}, exporter.Records(report.CurrentClients))

	assert.Equal(t, [][]string{
		{"", "charge_id", "amount_captured"},
		{"0", "ch_1", "50.00"},
		{"1", "ch_2", "19.99"},
		{domain.TotalsLabelSum, "", "69.99"},
	}, exporter.Records(report.CurrentCharges))

	assert.Empty(t, exporter.Records(nil))
}

func TestValue(t *testing.T) {
	s := "x"
	var missing *string

	assert.Equal(t, "x", exporter.Value(&s))
	assert.Nil(t, exporter.Value(missing))
	assert.Equal(t, 1.5, exporter.Value(1.5))
}
