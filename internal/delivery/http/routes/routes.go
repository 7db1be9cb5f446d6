package routes

import (
	"jobboard/internal/delivery/http/handler"
	v1 "jobboard/internal/delivery/http/routes/v1"
	"jobboard/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	deps      v1.Deps
	health    *handler.HealthHandler
	wsHandler *ws.Handler
}

func NewRegistry(deps v1.Deps, health *handler.HealthHandler, wsHandler *ws.Handler) *Registry {
	return &Registry{
		deps:      deps,
		health:    health,
		wsHandler: wsHandler,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.health != nil {
		app.Get("/health", r.health.HandleHealth)
	}

	if r.wsHandler != nil {
		app.Get("/ws/jobs", r.wsHandler.HandleJobsWS)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.deps)
}
