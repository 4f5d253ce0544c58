package routes

import (
	"schichtplan-backend/internal/handler"
	"schichtplan-backend/internal/middleware"
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupCycleRoutes(app *fiber.App, d Deps) {
	repo := repository.NewCycleRepository(d.DB)
	uc := usecase.NewCycleUsecase(repo, repository.NewShiftRepository(d.DB))
	hdl := handler.NewCycleHandler(repo, uc)

	admin := middleware.Role(model.RoleAdmin)
	api := app.Group("/api/admin/cycles", middleware.Auth(d.Config.JWTSecret))
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", admin, hdl.Create)
	api.Put("/:id", admin, hdl.Update)
	api.Delete("/:id", admin, hdl.Delete)
}
