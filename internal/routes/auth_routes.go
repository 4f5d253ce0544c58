package routes

import (
	"schichtplan-backend/internal/handler"
	"schichtplan-backend/internal/middleware"
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/usecase"
	"time"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, d Deps) {
	repo := repository.NewUserRepository(d.DB)
	uc := usecase.NewAuthUsecase(repo, d.Config.JWTSecret, time.Duration(d.Config.JWTTTLHours)*time.Hour)
	hdl := handler.NewAuthHandler(uc)

	app.Post("/api/login", hdl.Login)
	app.Get("/api/me", middleware.Auth(d.Config.JWTSecret), hdl.Me)

	admin := app.Group("/api/admin/users", middleware.Auth(d.Config.JWTSecret), middleware.Role(model.RoleAdmin))
	admin.Post("/", hdl.Register)
}
