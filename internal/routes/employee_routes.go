package routes

import (
	"schichtplan-backend/internal/handler"
	"schichtplan-backend/internal/middleware"
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupEmployeeRoutes(app *fiber.App, d Deps) {
	auth := middleware.Auth(d.Config.JWTSecret)
	admin := middleware.Role(model.RoleAdmin)

	employees := handler.NewEmployeeHandler(repository.NewEmployeeRepository(d.DB))
	e := app.Group("/api/admin/employees", auth)
	e.Get("/", employees.GetAll)
	e.Get("/:id", employees.GetByID)
	e.Post("/", admin, employees.Create)
	e.Put("/:id", admin, employees.Update)
	e.Delete("/:id", admin, employees.Delete)

	groups := handler.NewGroupHandler(repository.NewGroupRepository(d.DB))
	g := app.Group("/api/admin/groups", auth)
	g.Get("/", groups.GetAll)
	g.Get("/:id", groups.GetByID)
	g.Post("/", admin, groups.Create)
	g.Put("/:id", admin, groups.Update)
	g.Put("/:id/members", admin, groups.SetMembers)
	g.Delete("/:id", admin, groups.Delete)
}
