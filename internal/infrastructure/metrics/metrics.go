package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the board-share service
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Authorization metrics
	RoleResolutions *prometheus.CounterVec
	Logins          *prometheus.CounterVec
	TokenRefreshes  prometheus.Counter
	UserCacheHits   prometheus.Counter
	UserCacheMisses prometheus.Counter

	// Event metrics
	EventsPublished      *prometheus.CounterVec
	EventPublishErrors   *prometheus.CounterVec
	EventPublishDuration prometheus.Histogram

	// Dependency metrics
	DatabaseUp prometheus.Gauge
}

var (
	// DefaultMetrics is the default metrics instance
	DefaultMetrics *Metrics
	once           sync.Once
)

// GetDefaultMetrics returns the singleton metrics instance
func GetDefaultMetrics() *Metrics {
	once.Do(func() {
		DefaultMetrics = NewMetrics()
	})
	return DefaultMetrics
}

// NewMetrics registers every collector on the default registry.
// Call it once per process; use GetDefaultMetrics elsewhere.
func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "board_share_http_requests_total",
				Help: "Total number of HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "board_share_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"method", "route"},
		),

		RoleResolutions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "board_share_role_resolutions_total",
				Help: "Total number of channel role resolutions by resulting role",
			},
			[]string{"role"},
		),
		Logins: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "board_share_logins_total",
				Help: "Total number of identity provider logins by result",
			},
			[]string{"result"},
		),
		TokenRefreshes: promauto.NewCounter(prometheus.CounterOpts{
			Name: "board_share_token_refreshes_total",
			Help: "Total number of session token rotations",
		}),
		UserCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "board_share_user_cache_hits_total",
			Help: "Total number of authenticated user cache hits",
		}),
		UserCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "board_share_user_cache_misses_total",
			Help: "Total number of authenticated user cache misses",
		}),

		EventsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "board_share_events_published_total",
				Help: "Total number of domain events published by type",
			},
			[]string{"type"},
		),
		EventPublishErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "board_share_event_publish_errors_total",
				Help: "Total number of domain event publish failures",
			},
			[]string{"error_type"},
		),
		EventPublishDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "board_share_event_publish_duration_seconds",
			Help:    "Duration of Kafka produce operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),

		DatabaseUp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "board_share_database_up",
			Help: "1 when the last database ping succeeded",
		}),
	}
}

// ObserveHTTPRequest records a finished HTTP request
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordRoleResolution records the role resolved for a caller
func (m *Metrics) RecordRoleResolution(role string) {
	m.RoleResolutions.WithLabelValues(role).Inc()
}

// RecordLogin records a login attempt outcome
func (m *Metrics) RecordLogin(result string) {
	if result == "" {
		result = "unknown"
	}
	m.Logins.WithLabelValues(result).Inc()
}

// RecordTokenRefresh records a token rotation
func (m *Metrics) RecordTokenRefresh() {
	m.TokenRefreshes.Inc()
}

// RecordUserCache records an authenticated user cache lookup
func (m *Metrics) RecordUserCache(hit bool) {
	if hit {
		m.UserCacheHits.Inc()
		return
	}
	m.UserCacheMisses.Inc()
}

// RecordEventPublished records a delivered domain event with duration
func (m *Metrics) RecordEventPublished(eventType string, duration time.Duration) {
	m.EventsPublished.WithLabelValues(eventType).Inc()
	m.EventPublishDuration.Observe(duration.Seconds())
}

// RecordEventError records a domain event publish error with error type
func (m *Metrics) RecordEventError(errorType string) {
	if errorType == "" {
		errorType = "unknown"
	}
	m.EventPublishErrors.WithLabelValues(errorType).Inc()
}

// SetDatabaseUp updates the database availability gauge
func (m *Metrics) SetDatabaseUp(up bool) {
	if up {
		m.DatabaseUp.Set(1)
		return
	}
	m.DatabaseUp.Set(0)
}
