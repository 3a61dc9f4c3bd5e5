package routes

import (
	"quickdeliver-api/handlers"
	"quickdeliver-api/middleware"
	"quickdeliver-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)

		// Approved catalog (no auth needed)
		public.GET("/products", h.ListProducts)
		public.GET("/products/:id", h.GetProduct)

		// Order lifecycle info (great for docs/Postman)
		public.GET("/lifecycle", h.GetLifecycleInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", h.GetProfile)
		auth.POST("/auth/logout", h.Logout)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/customer")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.GET("/cart", h.GetCart)
		customer.POST("/cart", h.AddToCart)
		customer.DELETE("/cart/:index", h.RemoveFromCart)
		customer.POST("/checkout", h.Checkout)
		customer.GET("/orders", h.GetMyOrders)
		customer.PUT("/orders/:id/cancel", h.CancelOrder)
	}

	// ── Service offeror routes ─────────────────────────────────────
	merchant := r.Group("/api/merchant")
	merchant.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleServiceOfferor))
	{
		merchant.POST("/products", h.SubmitProduct)
		merchant.GET("/products", h.GetMyProducts)
		merchant.PUT("/products/:id", h.UpdateMyProduct)
		merchant.DELETE("/products/:id", h.RemoveMyProduct)
	}

	// ── Courier routes ─────────────────────────────────────────────
	courier := r.Group("/api/courier")
	courier.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCourier))
	{
		courier.GET("/orders", h.GetMyDeliveries)
		courier.PUT("/orders/:id/status", h.UpdateOrderStatus)
		courier.PUT("/delivery-area", h.UpdateDeliveryArea)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/users", h.AdminGetAllUsers)
		admin.POST("/users", h.AdminCreateAccount)
		admin.PUT("/users/:id", h.AdminEditUser)

		admin.GET("/products", h.AdminGetAllProducts)
		admin.GET("/products/pending", h.AdminGetPendingProducts)
		admin.POST("/products", h.AdminAddProduct)
		admin.PUT("/products/:id", h.AdminUpdateProduct)
		admin.PUT("/products/:id/approve", h.AdminApproveProduct)
		admin.DELETE("/products/:id/reject", h.AdminRejectProduct)
		admin.DELETE("/products/:id", h.AdminRemoveProduct)

		admin.GET("/orders", h.AdminGetAllOrders)
	}
}
