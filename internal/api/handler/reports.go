package handler

import (
	"errors"
	"net/http"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/usecases/reporting"
	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/apiErrors"
	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/log"
)

type weeklyReportResponse struct {
	*reporting.Result
	ExportFailures []string `json:"export_failures,omitempty"`
}

// GetWeeklyReport monta o relatório comparativo e, com export=true, grava os artefatos
func GetWeeklyReport(tenants Tenants) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := tenants.resolve(r)
		if err != nil {
			apiErrors.WriteDomainError(w, err)
			return
		}

		window, err := windowFromQuery(r)
		if err != nil {
			apiErrors.WriteDomainError(w, err)
			return
		}

		if !boolFromQuery(r, "export") {
			report, err := services.Generator.BuildReport(r.Context(), window)
			if err != nil {
				apiErrors.WriteDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, weeklyReportResponse{Result: &reporting.Result{Report: report}})
			return
		}

		result, err := services.Generator.Generate(r.Context(), window)

		var exportErr *reporting.ExportError
		if errors.As(err, &exportErr) {
			log.ForContext(r.Context()).WithError(err).Warn("Relatório gerado com falhas de exportação")
			response := weeklyReportResponse{Result: result}
			for _, f := range exportErr.Failures {
				response.ExportFailures = append(response.ExportFailures, f.Format+": "+f.Err.Error())
			}
			writeJSON(w, http.StatusOK, response)
			return
		}

		if err != nil {
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, weeklyReportResponse{Result: result})
	}
}
