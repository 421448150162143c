package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every runtime setting the API reads from the environment.
// main.go loads .env first (godotenv), so local development only needs a file.
type Config struct {
	Port            string
	DBDSN           string
	JWTSecret       string
	CORSAllowOrigin string

	// AI
	GeminiAPIKey string
	GeminiModel  string

	// External catalog API
	CatalogBaseURL string
	CatalogAPIKey  string

	// Email / notifications
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	EmailFrom    string
	AdminEmail   string

	// Background worker: pending orders older than this get auto-cancelled.
	StaleOrderAge time.Duration
}

// Load reads the configuration from environment variables, applying
// development-friendly defaults where a value is not critical.
func Load() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		DBDSN:           os.Getenv("DB_DSN"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "http://localhost:5173"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		CatalogBaseURL: getEnv("CATALOG_BASE_URL", "https://www.googleapis.com/books/v1"),
		CatalogAPIKey:  os.Getenv("CATALOG_API_KEY"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		EmailFrom:    getEnv("EMAIL_FROM", "no-reply@bookhaven.local"),
		AdminEmail:   getEnv("ADMIN_EMAIL", "admin@bookhaven.local"),

		StaleOrderAge: getEnvDuration("STALE_ORDER_AGE_HOURS", 48) * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallbackHours int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(fallbackHours)
}
