package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AISearchInput defines the JSON for natural-language book search.
type AISearchInput struct {
	Query string `json:"query" binding:"required"`
}

// AISearch is the handler for POST /v1/ai/search.
// The LLM condenses the request into catalog keywords, then the catalog
// API does the actual searching.
func (h *Handlers) AISearch(c *gin.Context) {
	userID_raw, _ := c.Get("userID")
	userID := userID_raw.(int64)

	var input AISearchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	terms, err := h.AIService.ExtractSearchTerms(c.Request.Context(), input.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI service unavailable: " + err.Error()})
		return
	}

	volumes, err := h.Catalog.Search(c.Request.Context(), terms, 10)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Catalog search failed: " + err.Error()})
		return
	}

	// Record the interaction; failure must not fail the request, the user
	// already has their answer.
	_, dbErr := h.DB.Exec(
		"INSERT INTO ai_search_history (user_id, query, search_terms) VALUES (?, ?, ?)",
		userID, input.Query, terms)
	if dbErr != nil {
		log.Printf("Warning: failed to save AI search history: %v", dbErr)
	}

	c.JSON(http.StatusOK, gin.H{
		"searchTerms": terms,
		"results":     volumes,
	})
}

// RecommendInput defines the JSON for POST /v1/ai/recommend.
type RecommendInput struct {
	Wish string `json:"wish"`
}

// RecommendBooks asks the LLM for suggestions based on the caller's
// purchase history plus an optional free-text wish.
func (h *Handlers) RecommendBooks(c *gin.Context) {
	userID_raw, _ := c.Get("userID")
	userID := userID_raw.(int64)

	var input RecommendInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Pull the titles this user has actually bought to seed the prompt.
	rows, err := h.DB.Query(`
		SELECT DISTINCT b.title
		FROM order_lines ol
		JOIN orders o ON ol.order_id = o.id
		JOIN books b ON ol.book_id = b.id
		WHERE o.user_id = ? AND o.status != 'cancelled'
		ORDER BY b.title
		LIMIT 20`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load purchase history"})
		return
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan purchase history"})
			return
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read purchase history"})
		return
	}

	recommendations, err := h.AIService.RecommendBooks(c.Request.Context(), titles, input.Wish)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI service unavailable: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}
