package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/apiErrors"
	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/log"
)

func TestCors(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		origin     string
		wantHeader string
		wantStatus int
		wantNext   bool
	}{
		{name: "origem liberada", method: http.MethodGet, origin: "http://reports.local", wantHeader: "http://reports.local", wantStatus: http.StatusTeapot, wantNext: true},
		{name: "origem desconhecida", method: http.MethodGet, origin: "http://evil.local", wantStatus: http.StatusTeapot, wantNext: true},
		{name: "preflight", method: http.MethodOptions, origin: "http://reports.local", wantHeader: "http://reports.local", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(tt.method, "/v1/charges", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors("http://reports.local")(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantNext, called)
		})
	}
}

func TestLoggingMiddleware_PreservesStatus(t *testing.T) {
	log.SetupTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, log.GetCorrelationID(r.Context()))
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/charges?platform=kahunas", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
}

func TestRequestFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/charges?platform=kahunas&start_date=20240101&end_date=20240115", nil)

	fields := requestFields(req, "abc")

	assert.Equal(t, "abc", fields["correlation_id"])
	assert.Equal(t, "kahunas", fields["platform"])
	assert.Equal(t, "20240101_to_20240115", fields["window"])

	fields = requestFields(httptest.NewRequest(http.MethodGet, "/healthcheck", nil), "abc")
	assert.NotContains(t, fields, "platform")
	assert.NotContains(t, fields, "window")
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}
