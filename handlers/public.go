package handlers

import (
	"net/http"
	"strconv"

	"quickdeliver-api/models"
	"quickdeliver-api/statemachine"
	"quickdeliver-api/store"

	"github.com/gin-gonic/gin"
)

// ListProducts returns approved products, optionally filtered by category
// (?category=Pizza, "all" or absent means everything).
func (h *Handler) ListProducts(c *gin.Context) {
	category := c.DefaultQuery("category", store.CategoryAll)
	products, err := h.Catalog.ListVisible(category)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(products),
		"category": category,
		"products": products,
	})
}

// GetProduct returns a single approved product
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}
	product, err := h.Catalog.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if product.Status != models.ProductApproved {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// GetLifecycleInfo documents the order status lifecycle
func (h *Handler) GetLifecycleInfo(c *gin.Context) {
	statuses := statemachine.All()
	hints := gin.H{}
	for _, s := range statuses {
		hints[string(s)] = statemachine.NextStatuses(s)
	}
	c.JSON(http.StatusOK, gin.H{
		"statuses":        statuses,
		"next_statuses":   hints,
		"terminal_states": []models.OrderStatus{models.StatusDelivered, models.StatusCancelled},
		"description":     "Order lifecycle. Couriers move orders forward; customers may cancel while pending.",
	})
}
