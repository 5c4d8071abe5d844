package handler

import (
	"context"
	"time"

	"portfolio-api/internal/database"
	"portfolio-api/internal/infrastructure/cache"
	"portfolio-api/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, cache *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	status := fiber.StatusOK
	if h.db == nil || h.db.Ping(ctx) != nil {
		dbStatus = "down"
		status = fiber.StatusServiceUnavailable
	}

	cacheStatus := "up"
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		// The cache is optional, a miss never fails the check.
		cacheStatus = "down"
	}

	data := fiber.Map{
		"database": dbStatus,
		"cache":    cacheStatus,
	}
	if status != fiber.StatusOK {
		return response.Error(c, status, "Service degraded", data)
	}
	return response.Success(c, status, response.MessageOK, data)
}
