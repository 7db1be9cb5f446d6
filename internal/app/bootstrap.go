package app

import (
	"fmt"
	"strings"

	"jobboard/internal/config"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/routes"
	v1 "jobboard/internal/delivery/http/routes/v1"
	"jobboard/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func Bootstrap(cfg config.Config, c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	errMw := middleware.NewErrorMiddleware(c.Logger)
	f.Use(errMw.Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())

	go c.Hub.Run()

	deps := v1.Deps{
		Config:   cfg,
		DB:       c.DB,
		Cache:    c.Cache,
		Notifier: ws.NewNotifier(c.Hub),
		Logger:   c.Logger,
	}
	health := handler.NewHealthHandler(c.DB, c.Cache, c.Hub)
	wsHandler := ws.NewHandler(c.Hub, cfg.App.WSAllowedOrigins, c.Logger)
	routes.NewRegistry(deps, health, wsHandler).Register(f)

	return &App{Fiber: f}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
