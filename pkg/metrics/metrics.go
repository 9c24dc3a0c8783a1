package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections prometheus.Gauge
	DBInUse           prometheus.Gauge
	DBIdle            prometheus.Gauge

	StoreCallDuration *prometheus.HistogramVec

	GateTransitions *prometheus.CounterVec
	BotOrdersTotal  *prometheus.CounterVec
}

// New создаёт метрики и регистрирует их в глобальном реестре (его отдаёт promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создаёт метрики в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),

		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		DBInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		DBIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),

		StoreCallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "store_call_duration_seconds",
			Help:        "Latency of calls to the external data store",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"backend", "operation", "status"}),

		GateTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "confirmation_gate_transitions_total",
			Help:        "Confirmation gate state transitions",
			ConstLabels: labels,
		}, []string{"from", "to"}),

		BotOrdersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bot_orders_total",
			Help:        "Bot orders submitted",
			ConstLabels: labels,
		}, []string{"importance", "result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.StoreCallDuration,
		m.GateTransitions,
		m.BotOrdersTotal,
	)

	return m
}

// ObserveStoreCall фиксирует длительность обращения к внешнему хранилищу
func (m *Metrics) ObserveStoreCall(backend, operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.StoreCallDuration.WithLabelValues(backend, operation, statusLabel(err)).
		Observe(time.Since(started).Seconds())
}

// ObserveGateTransition увеличивает счётчик переходов confirmation gate
func (m *Metrics) ObserveGateTransition(from, to string) {
	if m == nil {
		return
	}
	m.GateTransitions.WithLabelValues(from, to).Inc()
}

// ObserveBotOrder увеличивает счётчик отправленных заказов боту
func (m *Metrics) ObserveBotOrder(importance string, err error) {
	if m == nil {
		return
	}
	m.BotOrdersTotal.WithLabelValues(importance, statusLabel(err)).Inc()
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
