package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	entriesCreatedTotal       *prometheus.CounterVec
	entriesUpdatedTotal       *prometheus.CounterVec
	entriesDeletedTotal       *prometheus.CounterVec
	categoriesCreatedTotal    *prometheus.CounterVec
	categoriesDeletedTotal    prometheus.Counter
	analyticsRequestsTotal    *prometheus.CounterVec
	analyticsFetchDuration    prometheus.Histogram
	authenticationEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		entriesCreatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "entries_created_total",
				Help: "Total number of entries created by kind",
			},
			[]string{"kind"},
		),
		entriesUpdatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "entries_updated_total",
				Help: "Total number of entries updated by kind",
			},
			[]string{"kind"},
		),
		entriesDeletedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "entries_deleted_total",
				Help: "Total number of entries deleted by kind",
			},
			[]string{"kind"},
		),
		categoriesCreatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "categories_created_total",
				Help: "Total number of categories created by kind",
			},
			[]string{"kind"},
		),
		categoriesDeletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "categories_deleted_total",
				Help: "Total number of categories deleted",
			},
		),
		analyticsRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_requests_total",
				Help: "Total number of analytics reports computed by report type",
			},
			[]string{"report"},
		),
		analyticsFetchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analytics_fetch_duration_seconds",
				Help:    "Duration of the concurrent entry fetch behind analytics reports",
				Buckets: prometheus.DefBuckets,
			},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	kind := tags["kind"]

	switch name {
	case "entry_created":
		m.entriesCreatedTotal.WithLabelValues(kind).Inc()
	case "entry_updated":
		m.entriesUpdatedTotal.WithLabelValues(kind).Inc()
	case "entry_deleted":
		m.entriesDeletedTotal.WithLabelValues(kind).Inc()
	case "category_created":
		m.categoriesCreatedTotal.WithLabelValues(kind).Inc()
	case "category_deleted":
		m.categoriesDeletedTotal.Inc()
	case "analytics_request":
		if report := tags["report"]; report != "" {
			m.analyticsRequestsTotal.WithLabelValues(report).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "analytics.fetch":
		m.analyticsFetchDuration.Observe(duration.Seconds())
	}
}
