package handler

import (
	"net/http"

	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/apiErrors"
)

func GetCharges(tenants Tenants) http.HandlerFunc {
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

		charges, err := services.Reconciler.Charges(r.Context(), window)
		if err != nil {
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, charges)
	}
}

// GetLedgers agrupa as cobranças por cliente; customer_id restringe a um único cliente
func GetLedgers(tenants Tenants) http.HandlerFunc {
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

		result, err := services.Reconciler.Ledgers(r.Context(), window, r.URL.Query().Get("customer_id"))
		if err != nil {
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func GetRevenue(tenants Tenants) http.HandlerFunc {
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

		result, err := services.Reconciler.TotalRevenue(r.Context(), window)
		if err != nil {
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func GetPaymentIntents(tenants Tenants) http.HandlerFunc {
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

		intents, err := services.Reconciler.PaymentIntents(r.Context(), window)
		if err != nil {
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, intents)
	}
}

func GetEvents(tenants Tenants) http.HandlerFunc {
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

		events, err := services.Reconciler.Events(r.Context(), window)
		if err != nil {
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, events)
	}
}
