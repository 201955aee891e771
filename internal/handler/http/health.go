package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-geofence/internal/handler/http/response"
)

type HealthChecker interface {
	Health(ctx context.Context) error
}

type HealthHandler interface {
	Health(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	db HealthChecker
}

func NewHealthHandler(db HealthChecker) HealthHandler {
	return &healthHandlerImpl{db: db}
}

// Health implements HealthHandler. A failed ping reports 503 with status "degraded".
func (h *healthHandlerImpl) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Health(ctx); err != nil {
		slog.Error("Database health check failed", "error", err)
		response.ServiceUnavailable(w, map[string]string{"status": "degraded"})
		return
	}

	response.Success(w, map[string]string{"status": "ok"})
}
