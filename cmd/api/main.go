package main

import (
	"fmt"
	"os"
	"schichtplan-backend/config"
	"schichtplan-backend/internal/handler"
	"schichtplan-backend/internal/logger"
	"schichtplan-backend/internal/notify"
	"schichtplan-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Environment
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if envErr != nil {
		log.Info("no .env file found, using system environment")
	}

	// 2. Database
	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal("database connection failed", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	log.Info("database connected", zap.String("driver", cfg.DBDriver))

	// 3. Mail
	var mailer notify.Mailer = notify.LogMailer{Log: log}
	if cfg.SMTPHost != "" {
		mailer = notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	}

	// 4. HTTP
	app := fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler(log)})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.Setup(app, routes.Deps{DB: db, Config: cfg, Log: log, Mailer: mailer})

	log.Info("server listening", zap.String("port", cfg.AppPort))
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
