package pdf

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/exporter/exportertest"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
)

func TestRender(t *testing.T) {
	content, err := Render(exportertest.Report())
	require.NoError(t, err)
	assert.True(t, len(content) > 100)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestExporter_Export(t *testing.T) {
	path, err := New(t.TempDir()).Export(context.Background(), exportertest.Report())
	require.NoError(t, err)
	assert.Contains(t, path, "20240101_to_20240115_KAHUNAS_weekly_report.pdf")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestClientCount(t *testing.T) {
	report := exportertest.Report()

	table := domain.NewTable("clients", domain.Column{Name: "platform"}, domain.Column{Name: "customer_id"})
	table.AddRow("KAHUNAS", "cus_a")
	table.AddRow("KAHUNAS", nil)

	assert.Equal(t, 2, clientCount(table))
	table.AppendCountTotals()
	assert.Equal(t, 1, clientCount(table))
	assert.Equal(t, 0, clientCount(nil))
	assert.Equal(t, 2, clientCount(report.CurrentClients))
}
