package middleware

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/apiErrors"
	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/log"
	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/metrics"
)

// CorrelationIDHeader devolve ao cliente o ID usado nos logs da requisição
const CorrelationIDHeader = "X-Correlation-ID"

// Relatórios paginam o Stripe inteiro, então o limite é mais alto que o de uma API comum
const slowRequestThreshold = 5 * time.Second

// requestFields reúne os campos de log comuns a todas as rotas de consulta
func requestFields(r *http.Request, correlationID string) log.Fields {
	query := r.URL.Query()
	fields := log.Fields{
		"correlation_id": correlationID,
		"method":         r.Method,
		"path":           r.URL.Path,
	}

	if platform := query.Get("platform"); platform != "" {
		fields["platform"] = platform
	}
	if start, end := query.Get("start_date"), query.Get("end_date"); start != "" || end != "" {
		fields["window"] = start + "_to_" + end
	}

	return fields
}

// LoggingMiddleware registra cada requisição HTTP e alimenta as métricas de latência
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			fields := requestFields(r, correlationID)
			log.L.WithFields(fields).Debug("Requisição iniciada")

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			responseTime := time.Since(startTime)
			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(lrw.statusCode)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method).Observe(responseTime.Seconds())

			fields["status_code"] = lrw.statusCode
			fields["duration_ms"] = responseTime.Milliseconds()
			logger := log.L.WithFields(fields)

			switch {
			case lrw.statusCode >= http.StatusInternalServerError:
				logger.Error("Requisição finalizada com erro")
			case lrw.statusCode >= http.StatusBadRequest:
				logger.Warn("Requisição finalizada com aviso")
			default:
				logger.Info("Requisição finalizada com sucesso")
			}

			if responseTime > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s", responseTime)
			}
		})
	}
}

// loggingResponseWriter é um wrapper para http.ResponseWriter para capturar o status code
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware recupera panics dos handlers e responde SRV_001
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)

					log.L.WithFields(log.Fields{
						"correlation_id": log.GetCorrelationID(r.Context()),
						"error":          err,
						"method":         r.Method,
						"path":           r.URL.Path,
					}).WithField("stack_trace", string(stack[:stackSize])).Error("Erro não tratado na aplicação")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
