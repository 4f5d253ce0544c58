package routes

import (
	"schichtplan-backend/internal/handler"
	"schichtplan-backend/internal/middleware"
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupScheduleRoutes(app *fiber.App, d Deps) {
	schedule := newScheduleUsecase(d)
	auth := middleware.Auth(d.Config.JWTSecret)
	planner := middleware.Role(model.RoleAdmin, model.RolePlanner)

	// Read views
	hdl := handler.NewScheduleHandler(schedule)
	api := app.Group("/api/schedule", auth)
	api.Get("/resolve", hdl.Resolve)
	api.Get("/employee/:id", hdl.Employee)

	// Assignments
	assignments := handler.NewAssignmentHandler(repository.NewAssignmentRepository(d.DB), schedule)
	a := app.Group("/api/admin/assignments", auth)
	a.Get("/", assignments.GetAll)
	a.Get("/:employee_id", assignments.GetByEmployee)
	a.Put("/:employee_id", planner, assignments.Set)
	a.Delete("/:employee_id", planner, assignments.Remove)

	// Exceptions
	exceptions := handler.NewExceptionHandler(repository.NewExceptionRepository(d.DB), schedule)
	e := app.Group("/api/admin/exceptions", auth)
	e.Get("/", exceptions.Find)
	e.Post("/", planner, exceptions.Set)
	e.Post("/batch", planner, exceptions.SetBatch)
	e.Delete("/:id", planner, exceptions.Delete)
}
