package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for marketplace activity.
type BusinessMetrics struct {
	// Auth & accounts
	OTPRequested prometheus.Counter
	Throttled    *prometheus.CounterVec
	Logins       *prometheus.CounterVec
	LoginFailed  *prometheus.CounterVec
	Signups      *prometheus.CounterVec

	// Catalog
	ShopsCreated    prometheus.Counter
	ProductsCreated prometheus.Counter
	CatalogSearches *prometheus.CounterVec
	CatalogExports  prometheus.Counter

	// Cart
	CartItemsAdded *prometheus.CounterVec
	CartUpdated    *prometheus.CounterVec
	CartCleared    prometheus.Counter

	// Orders
	OrdersCreated    *prometheus.CounterVec
	OrderValue       *prometheus.HistogramVec
	OrderItemCount   prometheus.Histogram
	OrderTransitions *prometheus.CounterVec
	OrdersRejected   *prometheus.CounterVec
	RefundsFlagged   prometheus.Counter

	// Cache
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
	CacheErrors *prometheus.CounterVec

	// Background jobs
	JobsProcessed *prometheus.CounterVec
	JobsFailed    *prometheus.CounterVec
	JobDuration   *prometheus.HistogramVec
	OTPsPurged    prometheus.Counter
}

// NewBusinessMetrics creates all business metrics and registers them with reg.
// A nil reg uses the default Prometheus registry.
func NewBusinessMetrics(namespace string, reg prometheus.Registerer) *BusinessMetrics {
	if namespace == "" {
		namespace = "kirana"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)
	subsystem := "business"

	counterVec := func(name, help string, labels ...string) *prometheus.CounterVec {
		return factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		}, labels)
	}
	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		})
	}

	m := &BusinessMetrics{
		// =======================================================================
		// Auth & Accounts
		// =======================================================================
		OTPRequested: counter("otp_requested_total", "Total OTP codes issued"),
		Throttled:    counterVec("requests_throttled_total", "Requests rejected by a rate limiter", "limiter"),
		Logins:       counterVec("logins_total", "Total successful logins", "method"),           // method: otp, password
		LoginFailed:  counterVec("login_failed_total", "Total failed logins", "method", "reason"), // reason: credentials, otp_only, invalid_otp
		Signups:      counterVec("signups_total", "Total accounts created", "role", "method"),

		// =======================================================================
		// Catalog
		// =======================================================================
		ShopsCreated:    counter("shops_created_total", "Total shops created"),
		ProductsCreated: counter("products_created_total", "Total products created"),
		CatalogSearches: counterVec("catalog_searches_total", "Total catalog listings with a text search", "resource"),
		CatalogExports:  counter("catalog_exports_total", "Total product spreadsheet exports"),

		// =======================================================================
		// Cart
		// =======================================================================
		CartItemsAdded: counterVec("cart_items_added_total", "Total add to cart actions", "outcome"), // outcome: new_line, incremented
		CartUpdated:    counterVec("cart_updated_total", "Total cart line updates", "operation"),        // operation: set, remove
		CartCleared:    counter("cart_cleared_total", "Total cart clears"),

		// =======================================================================
		// Orders
		// =======================================================================
		OrdersCreated: counterVec("orders_created_total", "Total orders placed", "payment_method"),
		OrderValue: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_value_rupees",
				Help:      "Order total in rupees",
				Buckets:   []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
			},
			[]string{"payment_method"},
		),
		OrderItemCount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_item_count",
				Help:      "Number of lines per order",
				Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
			},
		),
		OrderTransitions: counterVec("order_transitions_total", "Total order status changes", "from", "to"),
		OrdersRejected:   counterVec("orders_rejected_total", "Total rejected order requests", "reason"),
		RefundsFlagged:   counter("refunds_flagged_total", "Total paid orders flagged refunded on cancel"),

		// =======================================================================
		// Cache
		// =======================================================================
		CacheHits:   counterVec("cache_hits_total", "Catalog cache hits", "entity"),
		CacheMisses: counterVec("cache_misses_total", "Catalog cache misses", "entity"),
		CacheErrors: counterVec("cache_errors_total", "Catalog cache failures that fell back to the database", "entity"),

		// =======================================================================
		// Background Jobs
		// =======================================================================
		JobsProcessed: counterVec("jobs_processed_total", "Total background job runs", "job"),
		JobsFailed:    counterVec("jobs_failed_total", "Total failed background job runs", "job"),
		JobDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "job_duration_seconds",
				Help:      "Background job run duration",
				Buckets:   []float64{.01, .05, .1, .5, 1, 5, 30},
			},
			[]string{"job"},
		),
		OTPsPurged: counter("otps_purged_total", "Expired OTP codes deleted by the cleanup job"),
	}

	return m
}

// Global instance for easy access from services and handlers
var Business *BusinessMetrics

// InitBusinessMetrics initializes the global business metrics instance
func InitBusinessMetrics(namespace string) *BusinessMetrics {
	Business = NewBusinessMetrics(namespace, nil)
	return Business
}
