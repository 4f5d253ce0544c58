package routes

import (
	"schichtplan-backend/internal/handler"
	"schichtplan-backend/internal/middleware"
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupShiftRoutes(app *fiber.App, d Deps) {
	repo := repository.NewShiftRepository(d.DB)
	hdl := handler.NewShiftHandler(repo)

	// Everyone reads the shift catalog; only admins change it.
	admin := middleware.Role(model.RoleAdmin)
	api := app.Group("/api/admin/shifts", middleware.Auth(d.Config.JWTSecret))
	api.Get("/", hdl.GetAll)
	api.Post("/", admin, hdl.Create)
	api.Put("/:id", admin, hdl.Update)
	api.Delete("/:id", admin, hdl.Delete)
}
