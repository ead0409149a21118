package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/kanizsa-users/internal/http/respond"
)

// Version is reported by the index endpoint.
const Version = "1.0.0"

// HealthHandler returns uptime and basic status, plus the service index.
type HealthHandler struct {
	service   string
	startedAt time.Time
}

// NewHealthHandler creates a health endpoint handler.
func NewHealthHandler(service string, startedAt time.Time) *HealthHandler {
	return &HealthHandler{service: service, startedAt: startedAt}
}

// Register wires the handler into a router.
func (h *HealthHandler) Register(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Get("/health", h.handleHealth)
}

func (h *HealthHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "ok", map[string]any{
		"status":    "healthy",
		"service":   h.service,
		"timestamp": time.Now().Unix(),
		"uptime":    time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}

func (h *HealthHandler) handleIndex(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "ok", map[string]any{
		"service": h.service,
		"version": Version,
		"endpoints": map[string]string{
			"health":   "/health",
			"register": "/auth/register",
			"login":    "/auth/login",
			"profile":  "/users/profile",
		},
	})
}
