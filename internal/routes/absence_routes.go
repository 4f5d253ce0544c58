package routes

import (
	"schichtplan-backend/internal/handler"
	"schichtplan-backend/internal/middleware"
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupAbsenceRoutes(app *fiber.App, d Deps) {
	hdl := handler.NewAbsenceHandler(
		repository.NewAbsenceRepository(d.DB),
		repository.NewOvertimeRepository(d.DB),
		repository.NewEmployeeRepository(d.DB),
	)
	auth := middleware.Auth(d.Config.JWTSecret)
	admin := middleware.Role(model.RoleAdmin)

	a := app.Group("/api/admin/absences", auth)
	a.Get("/", hdl.FindAbsences)
	a.Post("/", admin, hdl.CreateAbsence)
	a.Put("/:id", admin, hdl.UpdateAbsence)
	a.Delete("/:id", admin, hdl.DeleteAbsence)

	o := app.Group("/api/admin/overtime", auth)
	o.Get("/", hdl.FindOvertime)
	o.Post("/", admin, hdl.CreateOvertime)
	o.Delete("/:id", admin, hdl.DeleteOvertime)
}
