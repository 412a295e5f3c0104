package middleware

import (
	"net/http"
	"strconv"
)

// SecurityHeadersConfig configures the headers added to API responses.
type SecurityHeadersConfig struct {
	// HSTSMaxAge sets Strict-Transport-Security max-age in seconds.
	// Zero disables HSTS, which is what dev wants on plain HTTP.
	HSTSMaxAge int

	// NoStore marks responses uncacheable. API payloads carry tokens and
	// per-user carts, so this defaults to true.
	NoStore bool
}

// DefaultSecurityHeadersConfig returns the production settings.
func DefaultSecurityHeadersConfig() SecurityHeadersConfig {
	return SecurityHeadersConfig{
		HSTSMaxAge: 31536000, // 1 year
		NoStore:    true,
	}
}

// SecurityHeaders adds the headers a JSON API needs. There is no HTML, so no
// CSP beyond refusing to be framed.
func SecurityHeaders(config SecurityHeadersConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Content-Security-Policy", "frame-ancestors 'none'")
			h.Set("Referrer-Policy", "no-referrer")

			if config.NoStore {
				h.Set("Cache-Control", "no-store")
			}

			if config.HSTSMaxAge > 0 {
				h.Set("Strict-Transport-Security", "max-age="+strconv.Itoa(config.HSTSMaxAge)+"; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
