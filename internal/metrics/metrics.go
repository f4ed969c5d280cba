// Package metrics provides Prometheus metrics for the portfolio backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "portfolio"
)

// HTTP metrics
var (
	// HTTPRequestsTotal counts HTTP requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks HTTP request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)
)

// Image sync metrics
var (
	// SyncRunsTotal counts reconciliation passes by result ("completed" or "failed").
	SyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "image_sync",
			Name:      "runs_total",
			Help:      "Total number of image reconciliation passes",
		},
		[]string{"result"},
	)

	// SyncProjectsUpdatedTotal counts projects whose image was replaced.
	SyncProjectsUpdatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "image_sync",
			Name:      "projects_updated_total",
			Help:      "Total number of projects updated by image reconciliation",
		},
	)

	// SyncProjectErrorsTotal counts per-project failures inside a pass.
	SyncProjectErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "image_sync",
			Name:      "project_errors_total",
			Help:      "Total number of per-project update failures during reconciliation",
		},
	)
)

// Contact relay metrics
var (
	// ContactMessagesTotal counts contact submissions by outcome.
	ContactMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "messages_total",
			Help:      "Total number of contact form submissions by outcome",
		},
		[]string{"outcome"},
	)
)
