package routes

import (
	"schichtplan-backend/internal/handler"
	"schichtplan-backend/internal/middleware"
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupRequirementRoutes(app *fiber.App, d Deps) {
	repo := repository.NewRequirementRepository(d.DB)
	uc := usecase.NewRequirementUsecase(repo, repository.NewShiftRepository(d.DB), repository.NewGroupRepository(d.DB))
	hdl := handler.NewRequirementHandler(repo, uc)

	planner := middleware.Role(model.RoleAdmin, model.RolePlanner)
	api := app.Group("/api/admin/requirements", middleware.Auth(d.Config.JWTSecret))
	api.Get("/special", hdl.GetSpecial) // before /:id
	api.Post("/special", planner, hdl.SetSpecial)
	api.Delete("/special/:id", planner, hdl.DeleteSpecial)
	api.Get("/", hdl.GetWeekly)
	api.Post("/", planner, hdl.SetWeekly)
	api.Delete("/:id", planner, hdl.DeleteWeekly)
}
