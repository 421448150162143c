package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/bookhaven-golang/internal/models"
	"github.com/bookhaven/bookhaven-golang/internal/orders"
)

// ShippingAddressInput is the structured address on checkout and reorder.
// Every sub-field is required.
type ShippingAddressInput struct {
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	Region     string `json:"region" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

func (a ShippingAddressInput) toAddress() orders.ShippingAddress {
	return orders.ShippingAddress{
		Street:     a.Street,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

// CheckoutInput defines the JSON for POST /v1/checkout.
type CheckoutInput struct {
	ShippingAddress ShippingAddressInput `json:"shippingAddress" binding:"required"`
	PaymentMethod   string               `json:"paymentMethod" binding:"required"`
	CustomerEmail   string               `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string               `json:"customerPhone" binding:"required,min=7"`
	Notes           *string              `json:"notes"`
}

// Checkout is the handler for POST /v1/checkout. It converts the caller's
// cart into an order; all transactional guarantees live in the orders
// service, this handler only binds input and maps errors to status codes.
func (h *Handlers) Checkout(c *gin.Context) {
	userID_raw, _ := c.Get("userID")
	userID := userID_raw.(int64)

	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Orders.CreateOrder(c.Request.Context(), userID, orders.CreateOrderInput{
		Shipping:      input.ShippingAddress.toAddress(),
		PaymentMethod: input.PaymentMethod,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Notes:         input.Notes,
	})
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   order,
	})
}

// GetMyOrders is the handler for GET /v1/orders.
func (h *Handlers) GetMyOrders(c *gin.Context) {
	userID_raw, _ := c.Get("userID")
	userID := userID_raw.(int64)

	orderList, err := h.Store.Orders().ListByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	if orderList == nil {
		orderList = []models.Order{}
	}

	c.JSON(http.StatusOK, gin.H{"orders": orderList})
}

// GetOrderDetails is the handler for GET /v1/orders/:id.
func (h *Handlers) GetOrderDetails(c *gin.Context) {
	userID_raw, _ := c.Get("userID")
	userID := userID_raw.(int64)

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	order, err := h.Store.Orders().FindByID(c.Request.Context(), orderID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// CancelOrder is the handler for PATCH /v1/orders/:id/cancel.
// Only pending orders can be cancelled.
func (h *Handlers) CancelOrder(c *gin.Context) {
	userID_raw, _ := c.Get("userID")
	userID := userID_raw.(int64)

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	order, err := h.Orders.CancelOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order cancelled",
		"order":   order,
	})
}

// ReorderInput defines the JSON for POST /v1/orders/:id/reorder.
type ReorderInput struct {
	ShippingAddress ShippingAddressInput `json:"shippingAddress" binding:"required"`
	PaymentMethod   string               `json:"paymentMethod" binding:"required"`
	Notes           *string              `json:"notes"`
}

// ReorderOrder places a fresh order from a past one at current prices.
func (h *Handlers) ReorderOrder(c *gin.Context) {
	userID_raw, _ := c.Get("userID")
	userID := userID_raw.(int64)

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var input ReorderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Orders.Reorder(c.Request.Context(), userID, orderID, orders.ReorderInput{
		Shipping:      input.ShippingAddress.toAddress(),
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	})
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   order,
	})
}

// respondOrderError maps the orders service error taxonomy to HTTP codes.
func respondOrderError(c *gin.Context, err error) {
	var unavailable *orders.BookUnavailableError
	var badState *orders.InvalidStateTransitionError

	switch {
	case errors.Is(err, orders.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
	case errors.As(err, &unavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Book is no longer available: " + unavailable.Title,
			"title": unavailable.Title,
		})
	case errors.Is(err, orders.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.As(err, &badState):
		c.JSON(http.StatusConflict, gin.H{
			"error":         "Order cannot be cancelled in its current status",
			"currentStatus": badState.Current,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process order"})
	}
}
