package routes

import (
	"schichtplan-backend/internal/handler"
	"schichtplan-backend/internal/middleware"
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupAnalyticsRoutes(app *fiber.App, d Deps) {
	uc := usecase.NewAnalyticsUsecase(
		repository.NewStatisticsRepository(d.DB),
		repository.NewAbsenceRepository(d.DB),
		newStaffingUsecase(d),
		d.Config.AnomalyMonths,
		d.Config.AbsenceSpanGapDays,
		d.Log,
	)
	hdl := handler.NewAnalyticsHandler(uc)

	api := app.Group("/api/analytics", middleware.Auth(d.Config.JWTSecret))
	api.Post("/anomalies", hdl.Anomalies)
	api.Get("/monthly", hdl.Monthly)
	api.Get("/absence-spans", hdl.AbsenceSpans)
}
