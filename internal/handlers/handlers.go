package handlers

import (
	"database/sql"

	"github.com/bookhaven/bookhaven-golang/internal/ai"
	"github.com/bookhaven/bookhaven-golang/internal/catalog"
	"github.com/bookhaven/bookhaven-golang/internal/email"
	"github.com/bookhaven/bookhaven-golang/internal/orders"
	"github.com/bookhaven/bookhaven-golang/internal/store"
)

// Handlers holds all dependencies for the HTTP layer.
type Handlers struct {
	DB        *sql.DB
	Store     store.Store
	Orders    *orders.Service
	AIService *ai.AIService
	Catalog   *catalog.Client
	Mailer    *email.Sender
}
