package handlers

import (
	"net/http"
	"strconv"

	"quickdeliver-api/models"

	"github.com/gin-gonic/gin"
)

type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// AddToCart puts one unit of a product into the cart, merging with an
// existing line for the same product.
func (h *Handler) AddToCart(c *gin.Context) {
	customer, ok := h.actor(c)
	if !ok {
		return
	}
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	line, err := h.Cart.Add(customer, req.ProductID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": line.Name + " added to cart", "line": line})
}

// GetCart returns the cart lines and running total
func (h *Handler) GetCart(c *gin.Context) {
	customer, ok := h.actor(c)
	if !ok {
		return
	}
	lines, err := h.Cart.Lines(customer)
	if err != nil {
		h.fail(c, err)
		return
	}
	total, err := h.Cart.Total(customer)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(lines), "lines": lines, "total": total})
}

// RemoveFromCart deletes a whole line by its position in the cart
func (h *Handler) RemoveFromCart(c *gin.Context) {
	customer, ok := h.actor(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart line index"})
		return
	}
	if err := h.Cart.Remove(customer, index); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

type CheckoutRequest struct {
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required,oneof=cash card"`
}

// Checkout turns the cart into an order. Card payment is simulated; no card
// details are collected or validated.
func (h *Handler) Checkout(c *gin.Context) {
	customer, ok := h.actor(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.Ledger.PlaceOrder(customer, req.PaymentMethod)
	if err != nil {
		h.fail(c, err)
		return
	}
	message := "Order confirmed! You will pay on delivery"
	if req.PaymentMethod == models.PayCard {
		message = "Payment successful! Your order will be delivered soon"
	}
	c.JSON(http.StatusCreated, gin.H{"message": message, "order": order})
}

// GetMyOrders returns all orders for the logged-in customer
func (h *Handler) GetMyOrders(c *gin.Context) {
	customer, ok := h.actor(c)
	if !ok {
		return
	}
	orders, err := h.Ledger.ListForCustomer(customer.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// CancelOrder cancels one of the customer's own pending orders
func (h *Handler) CancelOrder(c *gin.Context) {
	customer, ok := h.actor(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}
	order, err := h.Ledger.Cancel(customer, uint(id))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled", "order_id": order.ID})
}
