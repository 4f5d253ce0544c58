package routes

import (
	"schichtplan-backend/internal/handler"
	"schichtplan-backend/internal/middleware"
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupStaffingRoutes(app *fiber.App, d Deps) {
	staffing := newStaffingUsecase(d)
	notifier := usecase.NewNotificationUsecase(staffing, repository.NewShiftRepository(d.DB), d.Mailer, d.Config.NotifyTo, d.Log)
	hdl := handler.NewStaffingHandler(staffing, notifier)
	auth := middleware.Auth(d.Config.JWTSecret)

	api := app.Group("/api/staffing", auth)
	api.Get("/", hdl.Aggregate)
	api.Get("/check", hdl.Check)
	api.Get("/matrix", hdl.Matrix)

	app.Post("/api/admin/staffing/notify", auth, middleware.Role(model.RoleAdmin, model.RolePlanner), hdl.Notify)
}
