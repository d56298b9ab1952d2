package csvexport

import (
	"context"
	"encoding/csv"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/exporter/exportertest"
)

func TestExporter_Export(t *testing.T) {
	path, err := New(t.TempDir()).Export(context.Background(), exportertest.Report())
	require.NoError(t, err)
	assert.Contains(t, path, "20240101_to_20240115_KAHUNAS_weekly_report.csv")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"# Platform:", "KAHUNAS"}, records[0])

	sections := []string{}
	for _, record := range records {
		if len(record) == 1 && len(record[0]) > 2 && record[0][:2] == "# " {
			sections = append(sections, record[0])
		}
	}
	assert.Equal(t, []string{
		"# 20240101_to_20240115ccl",
		"# 20231218_to_20240101pcl",
		"# 20240101_to_20240115cch",
		"# 20231218_to_20240101pch",
	}, sections)

	assert.Contains(t, records, []string{"sum_totals", "", "69.99"})
	assert.Contains(t, records, []string{"count_totals", "2", "2", "1"})
}

func TestExporter_Format(t *testing.T) {
	assert.Equal(t, "csv", New("").Format())
}
