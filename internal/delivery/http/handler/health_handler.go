package handler

import (
	"context"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type CachePinger interface {
	Ping(ctx context.Context) error
}

type WSClientCounter interface {
	ClientCount() int
}

type HealthHandler struct {
	db    database.DB
	cache CachePinger
	hub   WSClientCounter
}

func NewHealthHandler(db database.DB, cache CachePinger, hub WSClientCounter) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, hub: hub}
}

// HandleHealth reports the store, the list cache and the jobs feed. Only
// the store degrades overall status; the cache already bypasses itself
// when unavailable.
func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			status = "degraded"
		}
	}

	cacheStatus := "unavailable"
	if h.cache != nil && h.cache.Ping(ctx) == nil {
		cacheStatus = "ok"
	}

	wsClients := 0
	if h.hub != nil {
		wsClients = h.hub.ClientCount()
	}

	return response.Success(c, fiber.StatusOK, "", map[string]any{
		"status":     status,
		"cache":      cacheStatus,
		"ws_clients": wsClients,
	})
}
