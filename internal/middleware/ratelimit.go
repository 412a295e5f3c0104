package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/dukerupert/kirana/internal/telemetry"
)

// RateLimiterConfig configures a per-client token bucket.
type RateLimiterConfig struct {
	// Name labels the throttled-requests metric.
	Name string

	// RequestsPerSecond is the refill rate of each client's bucket.
	RequestsPerSecond float64

	// BurstSize is the bucket capacity.
	BurstSize int

	// IdleTTL drops a client's bucket after this long without a request.
	IdleTTL time.Duration

	// KeyFunc extracts the client key from the request.
	// Default: client IP address
	KeyFunc func(r *http.Request) string
}

// DefaultRateLimiterConfig is applied to every route: 10 rps with bursts of 20 per IP.
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		Name:              "default",
		RequestsPerSecond: 10,
		BurstSize:         20,
		IdleTTL:           3 * time.Minute,
		KeyFunc:           GetClientIP,
	}
}

// StrictRateLimiterConfig guards /api/auth: 1 rps with bursts of 5 per IP,
// which bounds OTP guessing and password spraying.
func StrictRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		Name:              "auth",
		RequestsPerSecond: 1,
		BurstSize:         5,
		IdleTTL:           3 * time.Minute,
		KeyFunc:           GetClientIP,
	}
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client key in memory.
type RateLimiter struct {
	config   RateLimiterConfig
	mu       sync.Mutex
	clients  map[string]*client
	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter starts a limiter and its idle-client sweeper. Call Stop to
// end the sweeper.
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = GetClientIP
	}
	if config.IdleTTL <= 0 {
		config.IdleTTL = 3 * time.Minute
	}
	if config.Name == "" {
		config.Name = "default"
	}

	rl := &RateLimiter{
		config:  config,
		clients: make(map[string]*client),
		stop:    make(chan struct{}),
	}
	go rl.sweep()
	return rl
}

func (rl *RateLimiter) limiter(key string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rate.Limit(rl.config.RequestsPerSecond), rl.config.BurstSize)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter
}

// Allow reports whether a request from key may proceed now.
func (rl *RateLimiter) Allow(key string) bool {
	return rl.limiter(key, time.Now()).Allow()
}

// take consumes a token for key. When none is available it returns how long
// the client has to wait for the next one.
func (rl *RateLimiter) take(key string) (time.Duration, bool) {
	now := time.Now()
	res := rl.limiter(key, now).ReserveN(now, 1)
	if !res.OK() {
		return time.Second, false
	}
	delay := res.DelayFrom(now)
	if delay == 0 {
		return 0, true
	}
	res.CancelAt(now)
	return delay, false
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(rl.config.IdleTTL)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			rl.evictIdle(now)
		case <-rl.stop:
			return
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	cutoff := now.Add(-rl.config.IdleTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, c := range rl.clients {
		if c.lastSeen.Before(cutoff) {
			delete(rl.clients, key)
		}
	}
}

// Stop ends the sweeper. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Middleware rejects requests over the limit with 429 and a Retry-After
// header in whole seconds.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wait, ok := rl.take(rl.config.KeyFunc(r))
		if !ok {
			if telemetry.Business != nil {
				telemetry.Business.Throttled.WithLabelValues(rl.config.Name).Inc()
			}
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			respondTooManyRequests(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetClientIP returns the first X-Forwarded-For hop, then X-Real-IP, then
// the connection's remote address. The API runs behind a proxy that sets
// these headers.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
