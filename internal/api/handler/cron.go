package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeWeeklyReports = "weekly-reports"
	CronJobTypeAll           = "all"
)

// SyncService é o contrato comum dos agendadores
type SyncService interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	WeeklyReportSyncService SyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeWeeklyReports, CronJobTypeAll:
			if services.WeeklyReportSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de relatórios semanais não disponível", nil)
				return
			}
			services.WeeklyReportSyncService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: weekly-reports, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.WeeklyReportSyncService != nil {
			status[CronJobTypeWeeklyReports] = services.WeeklyReportSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
