package app

import (
	"fmt"
	"log"
	"strings"

	"portfolio-api/internal/config"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(cfg config.Config, c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, c.Logger)
	routes.NewRegistry(cfg, c.DB, c.Cache, c.Logger).Register(f)

	return &App{Fiber: f}
}

// Bootstrap builds the container (pool, migrations, cache) and the
// wired Fiber app. The returned cleanup closes everything the
// container owns.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	return New(cfg, c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
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
