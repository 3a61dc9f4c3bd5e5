package handlers

import (
	"net/http"
	"strconv"

	"quickdeliver-api/models"
	"quickdeliver-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetMyDeliveries returns all orders assigned to the logged-in courier
func (h *Handler) GetMyDeliveries(c *gin.Context) {
	courier, ok := h.actor(c)
	if !ok {
		return
	}
	orders, err := h.Ledger.ListForCourier(courier.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":         len(orders),
		"delivery_area": courier.DeliveryArea,
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus applies a courier status update to an order
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	courier, ok := h.actor(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.Ledger.SetStatus(courier, uint(id), req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Order status updated",
		"order_id":      order.ID,
		"status":        order.Status,
		"next_statuses": statemachine.NextStatuses(order.Status),
	})
}

type UpdateDeliveryAreaRequest struct {
	DeliveryArea string `json:"delivery_area" binding:"required"`
}

// UpdateDeliveryArea lets the courier change their own delivery area
func (h *Handler) UpdateDeliveryArea(c *gin.Context) {
	courier, ok := h.actor(c)
	if !ok {
		return
	}
	var req UpdateDeliveryAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.Identity.UpdateDeliveryArea(courier, req.DeliveryArea)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Delivery area updated",
		"delivery_area": user.DeliveryArea,
	})
}
