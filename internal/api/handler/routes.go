package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/api/handler/router"
)

func Healthcheck(tenants Tenants) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(tenants),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Reports(tenants Tenants) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/weekly",
			Method:  http.MethodGet,
			Handler: GetWeeklyReport(tenants),
		},
	}
}

func Customers(tenants Tenants) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/customers/new",
			Method:  http.MethodGet,
			Handler: GetNewClients(tenants),
		},
		{
			Path:    "/v1/customers/by-email",
			Method:  http.MethodGet,
			Handler: GetClientsByEmail(tenants),
		},
		{
			Path:    "/v1/subscriptions/expiring",
			Method:  http.MethodGet,
			Handler: GetExpiringSubscriptions(tenants),
		},
	}
}

func Charges(tenants Tenants) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/charges",
			Method:  http.MethodGet,
			Handler: GetCharges(tenants),
		},
		{
			Path:    "/v1/charges/ledgers",
			Method:  http.MethodGet,
			Handler: GetLedgers(tenants),
		},
		{
			Path:    "/v1/charges/revenue",
			Method:  http.MethodGet,
			Handler: GetRevenue(tenants),
		},
		{
			Path:    "/v1/payment-intents",
			Method:  http.MethodGet,
			Handler: GetPaymentIntents(tenants),
		},
		{
			Path:    "/v1/events",
			Method:  http.MethodGet,
			Handler: GetEvents(tenants),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
