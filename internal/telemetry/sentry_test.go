package telemetry

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSentry_DisabledOrMissingDSN(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, cfg := range []SentryConfig{{}, {Enabled: true}} {
		cleanup, err := InitSentry(cfg, logger)
		require.NoError(t, err)
		require.NotNil(t, cleanup)
		assert.NotPanics(t, cleanup)
		assert.False(t, IsEnabled())
	}
}

func TestScrubEvent(t *testing.T) {
	event := &sentry.Event{Request: &sentry.Request{
		Headers: map[string]string{
			"Authorization": "Bearer secret",
			"Cookie":        "a=b",
			"User-Agent":    "curl",
		},
		Data: `{"mobile":"9876543210","otp":"123456"}`,
	}}

	out := scrubEvent(event, nil)
	assert.NotContains(t, out.Request.Headers, "Authorization")
	assert.NotContains(t, out.Request.Headers, "Cookie")
	assert.Equal(t, "curl", out.Request.Headers["User-Agent"])
	assert.Empty(t, out.Request.Data)

	assert.NotPanics(t, func() { scrubEvent(&sentry.Event{}, nil) })
}

func TestSentryMiddleware_DisabledPassesThrough(t *testing.T) {
	called := false
	h := SentryMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Nil(t, sentry.GetHubFromContext(r.Context()))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.True(t, called)
}
