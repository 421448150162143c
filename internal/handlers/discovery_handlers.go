package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/bookhaven-golang/internal/catalog"
	"github.com/bookhaven/bookhaven-golang/internal/models"
)

// SearchCatalog is the handler for GET /v1/discover/search.
// It proxies the external catalog API for books not yet in our own table.
func (h *Handlers) SearchCatalog(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	volumes, err := h.Catalog.Search(c.Request.Context(), query, limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Catalog search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": volumes})
}

// ImportBookInput defines the JSON for importing a catalog volume.
type ImportBookInput struct {
	VolumeID string `json:"volumeId" binding:"required"`
}

// ImportBook is the handler for POST /v1/admin/books/import.
// It copies one external catalog volume into the local books table.
func (h *Handlers) ImportBook(c *gin.Context) {
	var input ImportBookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.Store.Books().GetByExternalID(c.Request.Context(), input.VolumeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Book already imported",
			"book":  existing,
		})
		return
	}

	volume, err := h.Catalog.GetVolume(c.Request.Context(), input.VolumeID)
	if err != nil {
		if errors.Is(err, catalog.ErrVolumeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Catalog volume not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Catalog lookup failed: " + err.Error()})
		return
	}

	externalID := volume.ID
	book := &models.Book{
		Title:        volume.Title,
		Authors:      volume.Authors,
		Categories:   volume.Categories,
		Description:  volume.Description,
		Price:        volume.Price,
		Availability: volume.Availability,
		ExternalID:   &externalID,
	}
	if volume.ISBN != "" {
		isbn := volume.ISBN
		book.ISBN = &isbn
	}

	if err := h.Store.Books().Create(c.Request.Context(), book); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import book"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Book imported successfully",
		"book":    book,
	})
}
