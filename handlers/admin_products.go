package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AdminGetPendingProducts lists products awaiting review
func (h *Handler) AdminGetPendingProducts(c *gin.Context) {
	products, err := h.Catalog.ListPending()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
}

// AdminGetAllProducts lists the full catalog regardless of status
func (h *Handler) AdminGetAllProducts(c *gin.Context) {
	products, err := h.Catalog.ListAll()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
}

// AdminApproveProduct makes a pending product visible to customers.
// Approving twice is harmless.
func (h *Handler) AdminApproveProduct(c *gin.Context) {
	admin, ok := h.actor(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}
	product, err := h.Catalog.Approve(admin, uint(id))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product approved: " + product.Name, "product": product})
}

// AdminRejectProduct removes a product from the catalog entirely
func (h *Handler) AdminRejectProduct(c *gin.Context) {
	admin, ok := h.actor(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}
	if err := h.Catalog.Reject(admin, uint(id)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product rejected and removed"})
}

// AdminAddProduct creates a platform-owned product, approved immediately
func (h *Handler) AdminAddProduct(c *gin.Context) {
	admin, ok := h.actor(c)
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := h.Catalog.Submit(admin, req.Name, req.Price, req.Category)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product added", "product": product})
}

// AdminUpdateProduct edits any product's name, price and category
func (h *Handler) AdminUpdateProduct(c *gin.Context) {
	admin, ok := h.actor(c)
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
	product, err := h.Catalog.Update(admin, uint(id), req.Name, req.Price, req.Category)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": product})
}

// AdminRemoveProduct deletes any product, pending or approved
func (h *Handler) AdminRemoveProduct(c *gin.Context) {
	admin, ok := h.actor(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}
	if err := h.Catalog.Remove(admin, uint(id)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed"})
}
