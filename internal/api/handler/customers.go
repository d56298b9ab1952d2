package handler

import (
	"errors"
	"net/http"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/usecases/customer"
	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/apiErrors"
)

// GetNewClients lista os clientes criados na janela, já deduplicados por email
func GetNewClients(tenants Tenants) http.HandlerFunc {
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

		result, err := services.Customers.NewClients(r.Context(), window)
		if err != nil {
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func GetClientsByEmail(tenants Tenants) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := tenants.resolve(r)
		if err != nil {
			apiErrors.WriteDomainError(w, err)
			return
		}

		customers, err := services.Customers.ClientsByEmail(r.Context(), emailsFromQuery(r))
		if errors.Is(err, customer.ErrEmailRequired) {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe ao menos um email", nil)
			return
		}
		if err != nil {
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, customers)
	}
}

// GetExpiringSubscriptions lista as assinaturas, ou só as com cancelamento agendado quando scheduled_only=true
func GetExpiringSubscriptions(tenants Tenants) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := tenants.resolve(r)
		if err != nil {
			apiErrors.WriteDomainError(w, err)
			return
		}

		subscriptions, err := services.Customers.ExpiringSubscriptions(r.Context(), boolFromQuery(r, "scheduled_only"))
		if err != nil {
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, subscriptions)
	}
}
