package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/apiErrors"
)

func TestRouter(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:        "/v1/ping",
		Method:      http.MethodGet,
		Handler:     http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }),
		Middlewares: []func(http.Handler) http.Handler{tag("primeiro"), tag("segundo")},
	}))

	tests := []struct {
		name           string
		method         string
		target         string
		expectedStatus int
		expectedOrder  []string
	}{
		{
			name:           "rota registrada aplica os middlewares na ordem",
			method:         http.MethodGet,
			target:         "/v1/ping",
			expectedStatus: http.StatusNoContent,
			expectedOrder:  []string{"primeiro", "segundo"},
		},
		{
			name:           "rota inexistente devolve o erro padronizado",
			method:         http.MethodGet,
			target:         "/v1/pong",
			expectedStatus: apiErrors.StatusFor(apiErrors.ErrNotFound),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order = nil
			rec := httptest.NewRecorder()

			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedOrder, order)
		})
	}
}
