// Package metrics provides Prometheus metrics collection for the recipe service.
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

	// ShoppingListsTotal counts shopping list builds by outcome.
	ShoppingListsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopping_lists_total",
			Help: "Total number of shopping list builds",
		},
		[]string{"status"},
	)

	// ShoppingListDuration tracks how long a shopping list build takes.
	ShoppingListDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shopping_list_duration_seconds",
			Help:    "Shopping list build duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// ShoppingListItems tracks the number of lines per generated list.
	ShoppingListItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shopping_list_items",
			Help:    "Number of items in generated shopping lists",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		},
	)

	// RecipeOperationsTotal counts recipe writes by operation and outcome.
	RecipeOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_operations_total",
			Help: "Total number of recipe operations",
		},
		[]string{"operation", "status"},
	)

	// NotificationsTotal counts shopping list e-mails by outcome.
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Total number of shopping list notifications",
		},
		[]string{"status"},
	)

	// CircuitBreakerState exposes breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 open, 2 half-open",
		},
		[]string{"name"},
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
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordShoppingList records metrics for a shopping list build.
func RecordShoppingList(duration time.Duration, status string) {
	ShoppingListDuration.Observe(duration.Seconds())
	ShoppingListsTotal.WithLabelValues(status).Inc()
}

// RecordRecipeOperation records a recipe create, update or delete.
func RecordRecipeOperation(operation, status string) {
	RecipeOperationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordNotification records the outcome of a shopping list e-mail.
func RecordNotification(status string) {
	NotificationsTotal.WithLabelValues(status).Inc()
}

// SetCircuitBreakerState publishes the state of the named circuit breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
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
