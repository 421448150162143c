package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/bookhaven/bookhaven-golang/internal/ai"
	"github.com/bookhaven/bookhaven-golang/internal/auth"
	"github.com/bookhaven/bookhaven-golang/internal/catalog"
	"github.com/bookhaven/bookhaven-golang/internal/config"
	"github.com/bookhaven/bookhaven-golang/internal/database"
	"github.com/bookhaven/bookhaven-golang/internal/email"
	"github.com/bookhaven/bookhaven-golang/internal/handlers"
	"github.com/bookhaven/bookhaven-golang/internal/notify"
	"github.com/bookhaven/bookhaven-golang/internal/orders"
	"github.com/bookhaven/bookhaven-golang/internal/routes"
	"github.com/bookhaven/bookhaven-golang/internal/store"
)

func main() {
	// --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}
	cfg := config.Load()

	if cfg.DBDSN == "" {
		log.Fatal("CRITICAL ERROR: DB_DSN environment variable is not set.")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("CRITICAL ERROR: JWT_SECRET environment variable is not set.")
	}
	if cfg.GeminiAPIKey == "" {
		log.Fatal("CRITICAL ERROR: GEMINI_API_KEY environment variable is not set.")
	}
	auth.SetSecret(cfg.JWTSecret)

	// --- Database Connection ---
	db, err := database.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// --- AI Service ---
	aiService, err := ai.NewAIService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to initialize AI Service: %v", err)
	}
	defer aiService.Client.Close()

	// --- Application Wiring ---
	st := store.NewSQLStore(db)
	mailer := email.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFrom)
	notifier := notify.NewEmailNotifier(mailer, cfg.AdminEmail)
	orderService := orders.NewService(st, notifier)
	catalogClient := catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogAPIKey)

	app := &handlers.Handlers{
		DB:        db,
		Store:     st,
		Orders:    orderService,
		AIService: aiService,
		Catalog:   catalogClient,
		Mailer:    mailer,
	}

	// --- Background Worker ---
	// Sweeps abandoned pending orders once an hour.
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		log.Println("Background worker started: monitoring for stale pending orders...")

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			cancelled, err := orderService.CancelStaleOrders(ctx, cfg.StaleOrderAge)
			cancel()
			if err != nil {
				log.Printf("Stale order sweep failed: %v", err)
				continue
			}
			if cancelled > 0 {
				log.Printf("Stale order sweep cancelled %d pending orders", cancelled)
			}
		}
	}()

	// --- Router Setup ---
	router := routes.SetupRouter(app, cfg.CORSAllowOrigin)

	// --- Start Server ---
	log.Printf("Starting BookHaven API server on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
