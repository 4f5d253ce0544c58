package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppPort string

	DBDriver string // mysql or sqlite
	DBDSN    string

	JWTSecret   string
	JWTTTLHours int

	LogLevel string

	// Staffing range queries are fanned out per date; both values bound the work.
	MaxRangeDays int
	RangeWorkers int

	AnomalyMonths      int
	AbsenceSpanGapDays int

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	NotifyTo     []string
}

// Load reads configuration from the environment. Call godotenv.Load before it if a
// .env file should be honored.
func Load() (Config, error) {
	cfg := Config{
		AppPort:            GetEnv("APP_PORT", "3000"),
		DBDriver:           GetEnv("DB_DRIVER", "mysql"),
		DBDSN:              GetEnv("DB_DSN", "root:@tcp(127.0.0.1:3306)/schichtplan?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTTTLHours:        GetEnvAsInt("JWT_TTL_HOURS", 24),
		LogLevel:           GetEnv("LOG_LEVEL", "info"),
		MaxRangeDays:       GetEnvAsInt("MAX_RANGE_DAYS", 92),
		RangeWorkers:       GetEnvAsInt("RANGE_WORKERS", 8),
		AnomalyMonths:      GetEnvAsInt("ANOMALY_MONTHS", 12),
		AbsenceSpanGapDays: GetEnvAsInt("ABSENCE_SPAN_GAP_DAYS", 3),
		SMTPHost:           os.Getenv("SMTP_HOST"),
		SMTPPort:           GetEnvAsInt("SMTP_PORT", 587),
		SMTPUser:           os.Getenv("SMTP_USER"),
		SMTPPassword:       os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:           GetEnv("SMTP_FROM", "schichtplan@localhost"),
		NotifyTo:           splitList(os.Getenv("NOTIFY_TO")),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DBDriver != "mysql" && cfg.DBDriver != "sqlite" {
		return Config{}, fmt.Errorf("DB_DRIVER must be mysql or sqlite, got %q", cfg.DBDriver)
	}
	if cfg.MaxRangeDays < 1 || cfg.RangeWorkers < 1 {
		return Config{}, fmt.Errorf("MAX_RANGE_DAYS and RANGE_WORKERS must be positive")
	}
	if cfg.AnomalyMonths < 1 {
		return Config{}, fmt.Errorf("ANOMALY_MONTHS must be positive, got %d", cfg.AnomalyMonths)
	}
	if cfg.AbsenceSpanGapDays < 0 {
		return Config{}, fmt.Errorf("ABSENCE_SPAN_GAP_DAYS must not be negative, got %d", cfg.AbsenceSpanGapDays)
	}
	return cfg, nil
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
