package handler

import (
	"net/http"
	"sort"
	"time"
)

type healthcheckResponse struct {
	Status    string   `json:"status"`
	Time      string   `json:"time"`
	Platforms []string `json:"platforms"`
}

// HealthcheckHandler não consulta o Stripe, só informa as plataformas configuradas
func HealthcheckHandler(tenants Tenants) http.Handler {
	platforms := make([]string, 0, len(tenants.Services))
	for key := range tenants.Services {
		platforms = append(platforms, key)
	}
	sort.Strings(platforms)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthcheckResponse{
			Status:    "ok",
			Time:      time.Now().Format(time.RFC3339),
			Platforms: platforms,
		})
	})
}
