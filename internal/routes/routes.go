package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/bookhaven-golang/internal/handlers"
	"github.com/bookhaven/bookhaven-golang/internal/middleware"
)

// CORSMiddleware allows the configured frontend origin to call the API.
func CORSMiddleware(allowOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupRouter wires every endpoint of the API.
func SetupRouter(h *handlers.Handlers, corsAllowOrigin string) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware(corsAllowOrigin))

	v1 := router.Group("/v1")
	{
		// --- Health ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth (public) ---
		v1.POST("/register", h.Register)
		v1.POST("/login", h.Login)
		v1.POST("/auth/verify-email", h.VerifyEmail)
		v1.POST("/auth/resend-code", h.ResendVerificationCode)

		// --- Catalog (public) ---
		v1.GET("/books", h.GetBooks)
		v1.GET("/books/:id", h.GetBook)
		v1.GET("/categories", h.GetAllCategories)

		// --- Protected routes (login required) ---
		auth := v1.Group("/")
		auth.Use(middleware.AuthMiddleware())
		{
			auth.GET("/profile/me", h.GetMe)

			// Cart
			auth.GET("/cart", h.GetCart)
			auth.POST("/cart/items", h.AddToCart)
			auth.PUT("/cart/items/:book_id", h.UpdateCartItem)
			auth.DELETE("/cart/items/:book_id", h.DeleteCartItem)
			auth.DELETE("/cart", h.ClearCart)

			// Checkout & orders
			auth.POST("/checkout", h.Checkout)
			auth.GET("/orders", h.GetMyOrders)
			auth.GET("/orders/:id", h.GetOrderDetails)
			auth.PATCH("/orders/:id/cancel", h.CancelOrder)
			auth.POST("/orders/:id/reorder", h.ReorderOrder)

			// Discovery & AI
			auth.GET("/discover/search", h.SearchCatalog)
			auth.POST("/ai/search", h.AISearch)
			auth.POST("/ai/recommend", h.RecommendBooks)
			auth.GET("/books/:id/summary", h.GetBookSummary)
		}

		// --- Admin-only routes ---
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware())
		admin.Use(middleware.AdminMiddleware())
		{
			admin.POST("/books", h.CreateBook)
			admin.PUT("/books/:id", h.UpdateBook)
			admin.DELETE("/books/:id", h.DeleteBook)
			admin.PATCH("/books/:id/availability", h.UpdateBookAvailability)
			admin.POST("/books/import", h.ImportBook)

			admin.POST("/categories", h.CreateCategory)
		}
	}

	return router
}
