package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"sync"
	"time"
)

// MaxBodySize limits the size of request bodies.
// If no size is provided, DefaultMaxBodySize (1MB) is used. A declared
// Content-Length above the limit is rejected with 413 before the handler runs;
// an undeclared oversize body fails when the handler decodes it.
func MaxBodySize(maxBytes ...int64) func(http.Handler) http.Handler {
	var limit int64
	if len(maxBytes) > 0 {
		limit = maxBytes[0]
	} else {
		limit = DefaultMaxBodySize
	}

	return maxBodySizeWithLimit(limit)
}

func maxBodySizeWithLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.ContentLength > maxBytes {
				respondTooLarge(w, r, "Request body too large")
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// Common size limits
const (
	KB = 1024
	MB = 1024 * KB

	// DefaultMaxBodySize covers every JSON request the API accepts (1MB).
	// Images are URLs, so nothing larger is ever uploaded.
	DefaultMaxBodySize = 1 * MB
)

// Timeout bounds every request by one duration, DefaultTimeout when none is
// given. Requests still running at the deadline get a 503 JSON envelope.
func Timeout(timeout ...time.Duration) func(http.Handler) http.Handler {
	d := DefaultTimeout
	if len(timeout) > 0 {
		d = timeout[0]
	}
	return RouteTimeout(d, nil)
}

// RouteTimeout is Timeout with per-route deadlines. Overrides are keyed by the
// ServeMux pattern that matched, e.g. "GET /api/products/shop/{shopId}/export",
// so it must run behind the router rather than around it.
func RouteTimeout(def time.Duration, overrides map[string]time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			timeout := def
			if d, ok := overrides[r.Pattern]; ok {
				timeout = d
			}

			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := &timeoutWriter{
				ResponseWriter: w,
				header:         make(http.Header),
			}
			done := make(chan struct{})
			panicked := make(chan *HandlerPanic, 1)

			go func() {
				defer close(done)
				defer func() {
					if p := recover(); p != nil {
						hp := &HandlerPanic{Value: p, Stack: debug.Stack()}
						if tw.abandoned() {
							GetLogger(r.Context()).Error("panic after request timed out",
								"error", hp.Error(), "stack", string(hp.Stack))
							return
						}
						panicked <- hp
					}
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
			}()

			select {
			case <-done:
				// Re-raised here so recovery middleware on the request
				// goroutine answers it.
				select {
				case hp := <-panicked:
					panic(hp)
				default:
				}
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()

				tw.timedOut = true
				if !tw.wroteHeader {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusServiceUnavailable)
					_ = json.NewEncoder(w).Encode(errorEnvelope{
						Message: "Request timed out",
						Code:    "timeout",
					})
				}
				// A started response is left truncated
			}
		})
	}
}

// HandlerPanic carries a panic out of the goroutine Timeout runs handlers on,
// keeping the stack of the goroutine that panicked.
type HandlerPanic struct {
	Value any
	Stack []byte
}

func (p *HandlerPanic) Error() string {
	return fmt.Sprintf("%v", p.Value)
}

// Common timeout values
const (
	DefaultTimeout = 30 * time.Second

	// ExportTimeout covers spreadsheet exports of large catalogs
	ExportTimeout = 2 * time.Minute
)

// timeoutWriter wraps http.ResponseWriter to track if headers have been written.
// Once timedOut is set the handler goroutine can no longer reach the real writer.
// Headers are staged in header so the handler never shares the real map.
type timeoutWriter struct {
	http.ResponseWriter
	header      http.Header
	mu          sync.Mutex
	wroteHeader bool
	timedOut    bool
}

func (tw *timeoutWriter) abandoned() bool {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.timedOut
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.header
}

// writeHeaderLocked copies the staged headers and sends the status line.
func (tw *timeoutWriter) writeHeaderLocked(code int) {
	tw.wroteHeader = true
	dst := tw.ResponseWriter.Header()
	for k, v := range tw.header {
		dst[k] = v
	}
	tw.ResponseWriter.WriteHeader(code)
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.wroteHeader || tw.timedOut {
		return
	}
	tw.writeHeaderLocked(code)
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, context.DeadlineExceeded
	}
	if !tw.wroteHeader {
		tw.writeHeaderLocked(http.StatusOK)
	}
	return tw.ResponseWriter.Write(b)
}
