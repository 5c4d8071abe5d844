package v1

import (
	"log"

	"portfolio-api/internal/config"
	"portfolio-api/internal/database"
	"portfolio-api/internal/delivery/http/handler"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/infrastructure/cache"
	"portfolio-api/internal/pkg/token"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Register wires the v1 API. When admin auth is configured the
// mutating routes sit behind the bearer middleware, otherwise the
// whole surface is open, matching how the public portfolio runs.
func Register(r fiber.Router, cfg config.Config, db database.DB, cch *cache.Redis, logger *log.Logger) {
	if r == nil {
		return
	}

	aboutRepo := repository.NewPostgresAboutRepository(db)
	contactRepo := repository.NewPostgresContactRepository(db)
	projectRepo := repository.NewPostgresProjectRepository(db)
	categoryRepo := repository.NewPostgresCategoryRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)

	aboutUC := usecase.NewAboutUsecase(aboutRepo, cch, logger)
	contactUC := usecase.NewContactUsecase(contactRepo)
	projectUC := usecase.NewProjectUsecase(projectRepo, cch, logger)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo, categoryRepo, cch, logger)

	public := r.Group("")
	admin := public
	if cfg.Admin.Enabled() {
		tokens := token.NewHMACService(
			cfg.Admin.AccessSecret,
			cfg.Admin.RefreshSecret,
			cfg.Admin.AccessExpiresIn,
			cfg.Admin.RefreshExpiresIn,
		)
		authMw := middleware.NewAuthMiddleware(tokens)
		admin = r.Group("", authMw.Middleware())

		authUC := usecase.NewAuthUsecase(cfg.Admin, tokens)
		handler.NewAuthHandler(authUC).RegisterRoutes(public)
	}

	handler.NewAboutHandler(aboutUC).RegisterRoutes(public, admin)
	handler.NewContactHandler(contactUC).RegisterRoutes(public, admin)
	handler.NewProjectHandler(projectUC).RegisterRoutes(public, admin)
	handler.NewSkillCategoryHandler(categoryUC).RegisterRoutes(public, admin)
	handler.NewSkillHandler(skillUC).RegisterRoutes(public, admin)
}
