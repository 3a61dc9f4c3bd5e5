package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Category string  `json:"category" binding:"required"`
}

// SubmitProduct lets a service offeror list a new product. It starts in the
// pending state and is invisible to customers until the admin approves it.
func (h *Handler) SubmitProduct(c *gin.Context) {
	merchant, ok := h.actor(c)
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := h.Catalog.Submit(merchant, req.Name, req.Price, req.Category)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Product submitted, waiting for admin approval",
		"product": product,
	})
}

// GetMyProducts returns the merchant's own products of any status
func (h *Handler) GetMyProducts(c *gin.Context) {
	merchant, ok := h.actor(c)
	if !ok {
		return
	}
	products, err := h.Catalog.ListByOwner(merchant.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
}

// UpdateMyProduct overwrites name, price and category on one of the
// merchant's own products. Approval status is untouched.
func (h *Handler) UpdateMyProduct(c *gin.Context) {
	merchant, ok := h.actor(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := h.Catalog.Update(merchant, uint(id), req.Name, req.Price, req.Category)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": product})
}

// RemoveMyProduct deletes one of the merchant's own products
func (h *Handler) RemoveMyProduct(c *gin.Context) {
	merchant, ok := h.actor(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}
	if err := h.Catalog.Remove(merchant, uint(id)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed"})
}
