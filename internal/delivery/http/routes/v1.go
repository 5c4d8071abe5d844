package routes

import (
	"log"

	"portfolio-api/internal/config"
	"portfolio-api/internal/database"
	v1 "portfolio-api/internal/delivery/http/routes/v1"
	"portfolio-api/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, cch *cache.Redis, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, cch, logger)
}
