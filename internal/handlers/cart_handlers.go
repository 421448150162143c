package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/bookhaven-golang/internal/models"
)

// CartLineResponse is one row of the GET /v1/cart payload.
type CartLineResponse struct {
	BookID       int64    `json:"bookId"`
	Title        string   `json:"title"`
	Authors      []string `json:"authors"`
	Price        *float64 `json:"price,omitempty"`
	Availability string   `json:"availability"`
	Quantity     int      `json:"quantity"`
	LineTotal    float64  `json:"lineTotal"`
}

// GetCart is the handler for GET /v1/cart.
func (h *Handlers) GetCart(c *gin.Context) {
	userID_raw, _ := c.Get("userID")
	userID := userID_raw.(int64)

	lines, err := h.Store.Carts().ListLines(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	items := make([]CartLineResponse, 0, len(lines))
	var subtotal float64
	var totalItems int

	for _, line := range lines {
		item := CartLineResponse{
			BookID:       line.BookID,
			Title:        line.Book.Title,
			Authors:      line.Book.Authors,
			Price:        line.Book.Price,
			Availability: line.Book.Availability,
			Quantity:     line.Quantity,
		}
		if line.Book.Price != nil {
			item.LineTotal = *line.Book.Price * float64(line.Quantity)
		}
		subtotal += item.LineTotal
		totalItems += line.Quantity
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"subtotal":   subtotal,
		"totalItems": totalItems,
	})
}

// AddToCartInput defines the JSON for adding a book to the cart.
type AddToCartInput struct {
	BookID   int64 `json:"bookId" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,gt=0"`
}

// AddToCart is the handler for POST /v1/cart/items.
// Adding a book already in the cart bumps its quantity instead of creating
// a second line.
func (h *Handlers) AddToCart(c *gin.Context) {
	userID_raw, _ := c.Get("userID")
	userID := userID_raw.(int64)

	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	book, err := h.Store.Books().GetByID(c.Request.Context(), input.BookID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if book == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}
	if book.Availability != models.AvailabilityAvailable {
		c.JSON(http.StatusConflict, gin.H{"error": "Book is not available for purchase"})
		return
	}

	if err := h.Store.Carts().Upsert(c.Request.Context(), userID, input.BookID, input.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Book added to cart"})
}

// UpdateCartItemInput defines the JSON for updating a line's quantity.
// Quantity 0 is treated as a delete.
type UpdateCartItemInput struct {
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}

// UpdateCartItem is the handler for PUT /v1/cart/items/:book_id.
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	userID_raw, _ := c.Get("userID")
	userID := userID_raw.(int64)

	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if *input.Quantity == 0 {
		h.deleteCartLine(c, userID, bookID)
		return
	}

	updated, err := h.Store.Carts().SetQuantity(c.Request.Context(), userID, bookID, *input.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart line"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found in cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart line quantity updated"})
}

// DeleteCartItem is the handler for DELETE /v1/cart/items/:book_id.
func (h *Handlers) DeleteCartItem(c *gin.Context) {
	userID_raw, _ := c.Get("userID")
	userID := userID_raw.(int64)

	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	h.deleteCartLine(c, userID, bookID)
}

// ClearCart is the handler for DELETE /v1/cart.
func (h *Handlers) ClearCart(c *gin.Context) {
	userID_raw, _ := c.Get("userID")
	userID := userID_raw.(int64)

	if err := h.Store.Carts().DeleteAll(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

func (h *Handlers) deleteCartLine(c *gin.Context, userID, bookID int64) {
	deleted, err := h.Store.Carts().DeleteLine(c.Request.Context(), userID, bookID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart line"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found in cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart line removed"})
}
