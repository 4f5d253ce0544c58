package main

import (
	"fmt"
	"os"
	"schichtplan-backend/config"
	"schichtplan-backend/internal/database"
	"schichtplan-backend/internal/logger"
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/usecase"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	var file string

	cmd := &cobra.Command{
		Use:   "seeder",
		Short: "Load shift types, cycles, staff and requirements from a YAML fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Separate binary, so the .env is loaded here as well
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer log.Sync()

			fixture, err := database.LoadFixture(file)
			if err != nil {
				return err
			}

			db, err := config.ConnectDB(cfg)
			if err != nil {
				return err
			}

			auth := usecase.NewAuthUsecase(repository.NewUserRepository(db), cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
			if err := database.NewSeeder(db, auth, log).Run(fixture); err != nil {
				return err
			}
			log.Info("seeding finished", zap.String("file", file))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "seed.yaml", "fixture to load")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
