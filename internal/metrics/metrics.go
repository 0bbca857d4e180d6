package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vente_http_requests_total",
			Help: "Total HTTP requests by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vente_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	DocumentsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vente_documents_created_total",
			Help: "Orders and invoices created, by document kind",
		},
		[]string{"kind"},
	)

	PaymentsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vente_payments_recorded_total",
			Help: "Payments accepted against orders",
		},
	)

	PaymentsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vente_payments_rejected_total",
			Help: "Payments rejected by the balance check",
		},
	)
)
