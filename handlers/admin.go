package handlers

import (
	"net/http"
	"strconv"

	"quickdeliver-api/models"

	"github.com/gin-gonic/gin"
)

type CreateAccountRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role"`
}

// AdminCreateAccount creates an account of any role. Customers normally sign
// up themselves; this path exists for the other three roles.
func (h *Handler) AdminCreateAccount(c *gin.Context) {
	admin, ok := h.actor(c)
	if !ok {
		return
	}
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.Identity.CreateAccount(admin, req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully for " + user.Name,
		"role":    user.Role.DisplayName(),
		"user":    user,
	})
}

// AdminGetAllUsers returns all users, optionally filtered by role
func (h *Handler) AdminGetAllUsers(c *gin.Context) {
	users, err := h.Identity.ListAll(models.UserRole(c.Query("role")))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

type EditUserRequest struct {
	Field string `json:"field" binding:"required,oneof=name email role password"`
	Value string `json:"value" binding:"required"`
}

// AdminEditUser mutates exactly one field of the target user
func (h *Handler) AdminEditUser(c *gin.Context) {
	admin, ok := h.actor(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	var req EditUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.Identity.EditUser(admin, uint(id), req.Field, req.Value)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated", "user": user})
}

// AdminGetAllOrders returns the whole ledger with a status summary and the
// revenue across delivered orders.
func (h *Handler) AdminGetAllOrders(c *gin.Context) {
	orders, err := h.Ledger.ListAll()
	if err != nil {
		h.fail(c, err)
		return
	}

	summary := map[string]int{}
	var totalRevenue float64
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.Status == models.StatusDelivered {
			totalRevenue += o.TotalPrice
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": totalRevenue,
		"count":         len(orders),
		"orders":        orders,
	})
}
