package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	graphqlOperations   *prometheus.CounterVec
	graphqlDuration     prometheus.Histogram
	graphqlErrors       *prometheus.CounterVec
	transactionsCreated *prometheus.CounterVec
	transactionAmount   prometheus.Histogram
	categoriesCreated   prometheus.Counter
	authEventsTotal     *prometheus.CounterVec
	activeUsersTotal    prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		graphqlOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphql_operations_total",
				Help: "Total number of GraphQL operations executed",
			},
			[]string{"operation", "status"},
		),
		graphqlDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "graphql_operation_duration_milliseconds",
				Help:    "GraphQL operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		graphqlErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphql_errors_total",
				Help: "Total number of GraphQL errors by code",
			},
			[]string{"code"},
		),
		transactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"type"},
		),
		transactionAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_amount",
				Help:    "Transaction amount in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		categoriesCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "categories_created_total",
				Help: "Total number of categories created",
			},
		),
		authEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		activeUsersTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_users_total",
				Help: "Current number of registered users",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "graphql.operation":
		m.graphqlOperations.WithLabelValues(tags["operation"], tags["status"]).Inc()
	case "graphql.error":
		if code := tags["code"]; code != "" {
			m.graphqlErrors.WithLabelValues(code).Inc()
		}
	case "transaction.created":
		m.transactionsCreated.WithLabelValues(tags["type"]).Inc()
	case "category.created":
		m.categoriesCreated.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "graphql.operation":
		m.graphqlDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "transaction_amount":
		m.transactionAmount.Observe(value)
	case "active_users":
		m.activeUsersTotal.Set(value)
	}
}
