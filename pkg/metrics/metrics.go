package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "billing"

var (
	// UpstreamPagesTotal conta as páginas recebidas do Stripe por recurso
	UpstreamPagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "stripe",
		Name:      "pages_total",
		Help:      "Total de páginas recebidas do Stripe por recurso.",
	}, []string{"resource"})

	UpstreamFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "stripe",
		Name:      "failures_total",
		Help:      "Total de chamadas ao Stripe com falha.",
	}, []string{"resource", "retryable"})

	// ReportBuildsTotal conta as montagens de relatório por plataforma e resultado
	ReportBuildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "report",
		Name:      "builds_total",
		Help:      "Total de relatórios montados por plataforma e resultado.",
	}, []string{"platform", "outcome"})

	ReportBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "report",
		Name:      "build_duration_seconds",
		Help:      "Duração da montagem do relatório em segundos.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"platform"})

	ExportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "report",
		Name:      "exports_total",
		Help:      "Total de exportações por formato e resultado.",
	}, []string{"format", "outcome"})

	// AggregationWarningsTotal conta valores descartados durante somas
	AggregationWarningsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "report",
		Name:      "aggregation_warnings_total",
		Help:      "Total de valores ignorados durante agregações.",
	}, []string{"table"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total de requisições HTTP por método e status.",
	}, []string{"method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duração das requisições HTTP em segundos.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)
