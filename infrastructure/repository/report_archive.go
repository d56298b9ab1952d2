// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/database/postgres"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	reportSnapshotsTable = "report_snapshots"

	// FormatArchive identifica o arquivamento entre os formatos de exportação
	FormatArchive = "archive"
)

var reportSnapshotColumns = []string{
	"id",
	"platform",
	"period_start",
	"period_end",
	"previous_start",
	"previous_end",
	"current_revenue",
	"previous_revenue",
	"warning_count",
	"payload",
	"created_at",
}

// ReportArchiveRepository grava cópias dos relatórios gerados. O motor nunca lê daqui.
type ReportArchiveRepository interface {
	Save(ctx context.Context, report *domain.Report) (string, error)
}

type reportArchiveRepository struct {
	conn  postgres.Queryer
	now   func() time.Time
	newID func() (string, error)
}

func NewReportArchiveRepository(conn postgres.Queryer) ReportArchiveRepository {
	return &reportArchiveRepository{
		conn:  conn,
		now:   time.Now,
		newID: utils.GenerateID,
	}
}

func (r *reportArchiveRepository) Save(ctx context.Context, report *domain.Report) (string, error) {
	id, err := r.newID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar id do arquivamento: %w", err)
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar relatório: %w", err)
	}

	sqlQuery, args, err := squirrel.
		Insert(reportSnapshotsTable).
		Columns(reportSnapshotColumns...).
		Values(
			id,
			report.Platform,
			report.CurrentWindow.Start.Time(time.UTC),
			report.CurrentWindow.End.Time(time.UTC),
			report.PreviousWindow.Start.Time(time.UTC),
			report.PreviousWindow.End.Time(time.UTC),
			report.CurrentRevenue,
			report.PreviousRevenue,
			len(report.Warnings),
			payload,
			r.now().UTC(),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return "", fmt.Errorf("erro ao arquivar relatório: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"archive_id": id,
		"platform":   report.Platform,
		"window":     report.CurrentWindow.Label(),
	}).Info("Relatório arquivado")

	return id, nil
}

// ArchiveExporter expõe o repositório como mais um formato de exportação
type ArchiveExporter struct {
	repo ReportArchiveRepository
}

func NewArchiveExporter(repo ReportArchiveRepository) *ArchiveExporter {
	return &ArchiveExporter{repo: repo}
}

func (e *ArchiveExporter) Format() string {
	return FormatArchive
}

// Export devolve "<tabela>/<id>" como referência do artefato
func (e *ArchiveExporter) Export(ctx context.Context, report *domain.Report) (string, error) {
	id, err := e.repo.Save(ctx, report)
	if err != nil {
		return "", err
	}
	return reportSnapshotsTable + "/" + id, nil
}
