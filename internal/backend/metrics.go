package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "moodpet_backend",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route template and status code.",
		},
		[]string{"route", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "moodpet_backend",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route template.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	snapshotsSavedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "moodpet_backend",
			Name:      "snapshots_saved_total",
			Help:      "Snapshots written by save-user-data.",
		},
	)

	authFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "moodpet_backend",
			Name:      "auth_failures_total",
			Help:      "Requests rejected for a missing or unknown bearer token.",
		},
	)
)
