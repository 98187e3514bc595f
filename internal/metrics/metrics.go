// Package metrics provides Prometheus metrics collection for the optimizer service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestsInFlight tracks requests currently being served.
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		},
	)

	// HTTPRequestSize tracks request body sizes.
	HTTPRequestSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request body size in bytes",
			Buckets: prometheus.ExponentialBuckets(128, 4, 7),
		},
	)

	// HTTPResponseSize tracks response body sizes.
	HTTPResponseSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response body size in bytes",
			Buckets: prometheus.ExponentialBuckets(128, 4, 7),
		},
	)

	// OptimizationsTotal tracks total optimization runs by outcome.
	OptimizationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "optimizations_total",
			Help: "Total number of optimization runs",
		},
		[]string{"status"},
	)

	// OptimizationDuration tracks optimization duration.
	OptimizationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "optimization_duration_seconds",
			Help:    "Optimization duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// OptimizationPalletsUsed tracks the pallet count of completed optimizations.
	OptimizationPalletsUsed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "optimization_pallets_used",
			Help:    "Number of pallets produced per optimization",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200},
		},
	)

	// OptimizationVolumeUtilization tracks the volume utilization of completed optimizations.
	OptimizationVolumeUtilization = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "optimization_volume_utilization",
			Help:    "Container volume utilization percentage per optimization",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)

	// CacheHitRatio tracks the cache hit ratio since startup.
	CacheHitRatio = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_hit_ratio",
			Help: "Cache hit ratio since startup",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		HTTPRequestsInFlight.Inc()
		if c.Request.ContentLength > 0 {
			HTTPRequestSize.Observe(float64(c.Request.ContentLength))
		}

		c.Next()

		HTTPRequestsInFlight.Dec()
		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
		if size := c.Writer.Size(); size > 0 {
			HTTPResponseSize.Observe(float64(size))
		}
	}
}

// RecordOptimization records metrics for one optimization run.
func RecordOptimization(duration time.Duration, status string) {
	OptimizationDuration.Observe(duration.Seconds())
	OptimizationsTotal.WithLabelValues(status).Inc()
}

// RecordOptimizationOutcome records the shape of a completed optimization.
func RecordOptimizationOutcome(palletsUsed int, volumeUtilization float64) {
	OptimizationPalletsUsed.Observe(float64(palletsUsed))
	OptimizationVolumeUtilization.Observe(volumeUtilization)
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// UpdateCacheHitRatio updates the cache hit ratio gauge.
func UpdateCacheHitRatio(hits, misses uint64) {
	total := hits + misses
	if total == 0 {
		return
	}
	CacheHitRatio.Set(float64(hits) / float64(total))
}
