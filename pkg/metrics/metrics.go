package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Ledger metrics
	TokensCharged       *prometheus.CounterVec
	InsufficientRejects prometheus.Counter
	TokenPacksSold      *prometheus.CounterVec

	// Premium resolver metrics
	PremiumCacheHits   prometheus.Counter
	PremiumCacheMisses prometheus.Counter
	PremiumFailClosed  prometheus.Counter

	// Provider metrics
	ProviderRequestDuration *prometheus.HistogramVec
	ProviderErrors          *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		TokensCharged: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokens_charged_total",
				Help: "Total tokens charged, by model",
			},
			[]string{"model"},
		),
		InsufficientRejects: promauto.NewCounter(prometheus.CounterOpts{
			Name: "insufficient_balance_rejections_total",
			Help: "Total requests rejected for insufficient balance",
		}),
		TokenPacksSold: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "token_packs_sold_total",
				Help: "Total token packs sold",
			},
			[]string{"pack"}, // starter, plus, pro
		),

		PremiumCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "premium_cache_hits_total",
			Help: "Premium status resolutions served from cache",
		}),
		PremiumCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "premium_cache_misses_total",
			Help: "Premium status resolutions that hit the store",
		}),
		PremiumFailClosed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "premium_fail_closed_total",
			Help: "Premium status resolutions that failed closed to free tier",
		}),

		ProviderRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "provider_request_duration_seconds",
				Help:    "Upstream AI provider request latency in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"model"},
		),
		ProviderErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "provider_errors_total",
				Help: "Upstream AI provider failures",
			},
			[]string{"model"},
		),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path (e.g., /api/v1/models/:id)

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}

// RecordTokensCharged records a successful charge
func (m *Metrics) RecordTokensCharged(model string, tokens int64) {
	m.TokensCharged.WithLabelValues(model).Add(float64(tokens))
}

// RecordInsufficientBalance increments the rejection counter
func (m *Metrics) RecordInsufficientBalance() {
	m.InsufficientRejects.Inc()
}

// RecordTokenPackSold increments the sold packs counter
func (m *Metrics) RecordTokenPackSold(pack string) {
	m.TokenPacksSold.WithLabelValues(pack).Inc()
}

// RecordPremiumResolution records a cache hit or miss on the resolver
func (m *Metrics) RecordPremiumResolution(cacheHit bool) {
	if cacheHit {
		m.PremiumCacheHits.Inc()
	} else {
		m.PremiumCacheMisses.Inc()
	}
}

// RecordPremiumFailClosed increments the fail-closed counter
func (m *Metrics) RecordPremiumFailClosed() {
	m.PremiumFailClosed.Inc()
}

// RecordProviderRequest records one upstream provider call
func (m *Metrics) RecordProviderRequest(model string, duration time.Duration, err error) {
	m.ProviderRequestDuration.WithLabelValues(model).Observe(duration.Seconds())
	if err != nil {
		m.ProviderErrors.WithLabelValues(model).Inc()
	}
}
