package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/kirana/internal/handler"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the service descriptor and the health check.
type HealthHandler struct {
	db      Pinger
	version string
	logger  *slog.Logger
}

func NewHealthHandler(db Pinger, version string, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{db: db, version: version, logger: logger}
}

const healthTimeout = 2 * time.Second

type indexResponse struct {
	handler.Envelope
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

type healthResponse struct {
	handler.Envelope
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// Index handles GET /api
func (h *HealthHandler) Index(w http.ResponseWriter, r *http.Request) {
	handler.OK(w, http.StatusOK, indexResponse{
		Envelope: handler.Success("QueueLess Kirana API"),
		Name:     "kirana",
		Version:  h.version,
		Endpoints: map[string]string{
			"auth":     "/api/auth",
			"shops":    "/api/shops",
			"products": "/api/products",
			"cart":     "/api/cart",
			"orders":   "/api/orders",
			"users":    "/api/users",
			"health":   "/api/health",
		},
	})
}

// Health handles GET /api/health. An unreachable database answers 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	resp := healthResponse{
		Envelope:  handler.Success(""),
		Status:    "ok",
		Database:  "connected",
		Timestamp: time.Now().UTC(),
	}
	status := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("health check: database unreachable", "error", err)
		resp.Success = false
		resp.Status = "degraded"
		resp.Database = "disconnected"
		status = http.StatusServiceUnavailable
	}

	handler.OK(w, status, resp)
}
