package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса.
// Все методы безопасны для nil-получателя: при выключенных метриках
// компоненты получают nil и ничего не пишут.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration   *prometheus.HistogramVec
	dbOpenConnections prometheus.Gauge
	dbInUse           prometheus.Gauge
	dbIdle            prometheus.Gauge
	dbWaitCount       prometheus.Gauge

	reservationsCreated *prometheus.CounterVec
	lookupsTotal        *prometheus.CounterVec
	cacheRequests       *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "db_query_duration_seconds",
			Help:      "Database query latency by operation and outcome.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation", "status"}),
		dbOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "db_open_connections",
			Help:      "Number of established database connections.",
		}),
		dbInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "db_in_use_connections",
			Help:      "Number of database connections currently in use.",
		}),
		dbIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "db_idle_connections",
			Help:      "Number of idle database connections.",
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "db_wait_count",
			Help:      "Total number of connections waited for.",
		}),
		reservationsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "reservations_created_total",
			Help:      "Reservation submissions by result (created, conflict, invalid, error).",
		}, []string{"result"}),
		lookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "reservation_lookups_total",
			Help:      "Reservation lookups by result (found, empty, invalid, error, limited).",
		}, []string{"result"}),
		cacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "cache_requests_total",
			Help:      "Query cache lookups by key kind and result (hit, miss, error).",
		}, []string{"kind", "result"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbOpenConnections,
		m.dbInUse,
		m.dbIdle,
		m.dbWaitCount,
		m.reservationsCreated,
		m.lookupsTotal,
		m.cacheRequests,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.dbOpenConnections.Set(float64(open))
	m.dbInUse.Set(float64(inUse))
	m.dbIdle.Set(float64(idle))
	m.dbWaitCount.Set(float64(waitCount))
}

// IncReservationCreated учитывает результат создания бронирования
func (m *Metrics) IncReservationCreated(result string) {
	if m == nil {
		return
	}
	m.reservationsCreated.WithLabelValues(result).Inc()
}

// IncLookup учитывает результат поиска бронирований
func (m *Metrics) IncLookup(result string) {
	if m == nil {
		return
	}
	m.lookupsTotal.WithLabelValues(result).Inc()
}

// IncCacheRequest учитывает обращение к кэшу
func (m *Metrics) IncCacheRequest(kind, result string) {
	if m == nil {
		return
	}
	m.cacheRequests.WithLabelValues(kind, result).Inc()
}
