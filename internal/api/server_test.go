package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/api/handler"
)

func TestNewHandler(t *testing.T) {
	tenants := handler.Tenants{
		Services: map[string]handler.TenantServices{"studiobookings": {}, "kahunas": {}},
	}
	h := NewHandler(tenants, handler.CronJobServices{})

	tests := []struct {
		name           string
		method         string
		target         string
		expectedStatus int
		validate       func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:           "healthcheck",
			method:         http.MethodGet,
			target:         "/healthcheck",
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var body struct {
					Status    string   `json:"status"`
					Time      string   `json:"time"`
					Platforms []string `json:"platforms"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "ok", body.Status)
				assert.Equal(t, []string{"kahunas", "studiobookings"}, body.Platforms)
				_, err := time.Parse(time.RFC3339, body.Time)
				require.NoError(t, err)
			},
		},
		{
			name:           "metrics",
			method:         http.MethodGet,
			target:         "/metrics",
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "go_goroutines")
			},
		},
		{
			name:           "plataforma sem serviços",
			method:         http.MethodGet,
			target:         "/v1/charges?start_date=20240101&end_date=20240115",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "rota inexistente",
			method:         http.MethodGet,
			target:         "/v1/inexistente",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			req.Header.Set("Origin", "http://localhost:3000")
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}
