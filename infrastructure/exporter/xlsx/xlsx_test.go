package xlsx

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/exporter/exportertest"
)

func TestExporter_Export(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)

	path, err := e.Export(context.Background(), exportertest.Report())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "20240101_to_20240115_KAHUNAS_weekly_report.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		"20240101_to_20240115ccl",
		"20231218_to_20240101pcl",
		"20240101_to_20240115cch",
		"20231218_to_20240101pch",
	}, f.GetSheetList())

	rows, err := f.GetRows("20240101_to_20240115cch")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"", "charge_id", "amount_captured"}, rows[0])
	assert.Equal(t, "ch_1", rows[1][1])
	assert.Equal(t, "sum_totals", rows[3][0])

	total, err := f.GetCellValue("20240101_to_20240115cch", "C4")
	require.NoError(t, err)
	assert.Equal(t, "69.99", total)

	clients, err := f.GetRows("20240101_to_20240115ccl")
	require.NoError(t, err)
	require.Len(t, clients, 4)
	assert.Equal(t, "a@x.com", clients[1][3])
	assert.Equal(t, "count_totals", clients[3][0])
}

func TestExporter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(t.TempDir()).Export(ctx, exportertest.Report())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExporter_Format(t *testing.T) {
	assert.Equal(t, "xlsx", New("").Format())
}
