package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/bookhaven-golang/internal/models"
	"github.com/bookhaven/bookhaven-golang/internal/store"
)

// GetBooks is the handler for GET /v1/books.
// Supports ?page, ?page_size and the filters ?q, ?category, ?availability,
// ?min_price, ?max_price.
func (h *Handlers) GetBooks(c *gin.Context) {
	filter := store.BookFilter{
		Query:        c.Query("q"),
		Category:     c.Query("category"),
		Availability: c.Query("availability"),
	}

	if v := c.Query("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &f
		}
	}
	if v := c.Query("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &f
		}
	}

	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	books, total, err := h.Store.Books().List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	if books == nil {
		books = []models.Book{}
	}

	totalPages := (total + filter.PageSize - 1) / filter.PageSize

	c.JSON(http.StatusOK, gin.H{
		"books": books,
		"pagination": gin.H{
			"page":       filter.Page,
			"pageSize":   filter.PageSize,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}

// GetBook is the handler for GET /v1/books/:id.
func (h *Handlers) GetBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	book, err := h.Store.Books().GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	if book == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"book": book})
}

// BookInput is the admin create/update payload.
type BookInput struct {
	Title        string   `json:"title" binding:"required"`
	Authors      []string `json:"authors"`
	Categories   []string `json:"categories"`
	Description  string   `json:"description"`
	Price        *float64 `json:"price" binding:"omitempty,gte=0"`
	Availability string   `json:"availability"`
	ISBN         *string  `json:"isbn"`
}

// CreateBook is the handler for POST /v1/admin/books.
func (h *Handlers) CreateBook(c *gin.Context) {
	var input BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Availability != "" && !models.ValidAvailability(input.Availability) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability value"})
		return
	}

	book := &models.Book{
		Title:        input.Title,
		Authors:      input.Authors,
		Categories:   input.Categories,
		Description:  input.Description,
		Price:        input.Price,
		Availability: input.Availability,
		ISBN:         input.ISBN,
	}

	if err := h.Store.Books().Create(c.Request.Context(), book); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create book"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Book created successfully",
		"book":    book,
	})
}

// UpdateBook is the handler for PUT /v1/admin/books/:id.
func (h *Handlers) UpdateBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	var input BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Availability != "" && !models.ValidAvailability(input.Availability) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability value"})
		return
	}

	book, err := h.Store.Books().GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	if book == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}

	book.Title = input.Title
	book.Authors = input.Authors
	book.Categories = input.Categories
	book.Description = input.Description
	book.Price = input.Price
	if input.Availability != "" {
		book.Availability = input.Availability
	}
	book.ISBN = input.ISBN

	updated, err := h.Store.Books().Update(c.Request.Context(), book)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update book"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Book updated successfully",
		"book":    book,
	})
}

// DeleteBook is the handler for DELETE /v1/admin/books/:id.
func (h *Handlers) DeleteBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	deleted, err := h.Store.Books().Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete book"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}

// UpdateAvailabilityInput is the payload for the availability PATCH.
type UpdateAvailabilityInput struct {
	Availability string `json:"availability" binding:"required"`
}

// UpdateBookAvailability is the handler for PATCH /v1/admin/books/:id/availability.
func (h *Handlers) UpdateBookAvailability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	var input UpdateAvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidAvailability(input.Availability) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability value"})
		return
	}

	updated, err := h.Store.Books().UpdateAvailability(c.Request.Context(), id, input.Availability)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update availability"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}

// GetBookSummary is the handler for GET /v1/books/:id/summary.
// It asks the AI service for a short spoiler-free summary.
func (h *Handlers) GetBookSummary(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	book, err := h.Store.Books().GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	if book == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}

	summary, err := h.AIService.SummarizeBook(c.Request.Context(), book.Title, book.Authors, book.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI service unavailable: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookId":  book.ID,
		"summary": summary,
	})
}
