package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics records per-route HTTP request counts, latency and response size.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	size     *prometheus.HistogramVec
	inFlight prometheus.Gauge
	handler  http.Handler
}

// NewMetrics registers the HTTP collectors with reg, or with the default
// registry when reg is nil.
func NewMetrics(namespace string, reg *prometheus.Registry) *Metrics {
	if namespace == "" {
		namespace = "kirana"
	}

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		handler                          = promhttp.Handler()
	)
	if reg != nil {
		registerer = reg
		handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}
	factory := promauto.With(registerer)

	labels := []string{"method", "route", "status"}
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status",
		}, labels),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2.5, 12),
		}, labels),
		size: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "response_size_bytes",
			Help:      "HTTP response body size",
			Buckets:   prometheus.ExponentialBuckets(100, 10, 5),
		}, labels),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "HTTP requests being served",
		}),
		handler: handler,
	}
}

func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		start := time.Now()
		rec := &metricsResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		lv := []string{r.Method, routeLabel(r), strconv.Itoa(rec.status)}
		m.requests.WithLabelValues(lv...).Inc()
		m.duration.WithLabelValues(lv...).Observe(time.Since(start).Seconds())
		m.size.WithLabelValues(lv...).Observe(float64(rec.written))
	})
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

type metricsResponseWriter struct {
	http.ResponseWriter
	status  int
	written int
}

func (w *metricsResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *metricsResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

// routeLabel is the matched ServeMux pattern without its method, e.g.
// "/api/shops/{id}". The catch-all not-found route collapses to "unmatched"
// so scanners cannot inflate label cardinality.
func routeLabel(r *http.Request) string {
	switch r.Pattern {
	case "":
		return normalizePath(r.URL.Path)
	case "/":
		return "unmatched"
	}
	_, pattern, found := strings.Cut(r.Pattern, " ")
	if !found {
		return r.Pattern
	}
	return pattern
}

// normalizePath replaces UUID segments with {id}.
func normalizePath(path string) string {
	segments := strings.FieldsFunc(path, func(c rune) bool { return c == '/' })
	for i, seg := range segments {
		if len(seg) == 36 && uuid.Validate(seg) == nil {
			segments[i] = "{id}"
		}
	}
	return "/" + strings.Join(segments, "/")
}
