package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/bookhaven/bookhaven-golang/internal/models"
)

// CreateCategoryInput defines the JSON input for creating a category.
type CreateCategoryInput struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory is the handler for POST /v1/admin/categories.
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := &models.Category{
		Name: input.Name,
		Slug: slug.Make(input.Name),
	}

	if err := h.Store.Categories().Create(c.Request.Context(), category); err != nil {
		// Most likely a UNIQUE constraint violation on name or slug.
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to create category, it may already exist"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category created successfully",
		"category": category,
	})
}

// GetAllCategories is the handler for GET /v1/categories.
func (h *Handlers) GetAllCategories(c *gin.Context) {
	categories, err := h.Store.Categories().List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	if categories == nil {
		categories = []models.Category{}
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
