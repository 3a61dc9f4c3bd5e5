package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"quickdeliver-api/config"
	"quickdeliver-api/handlers"
	"quickdeliver-api/models"
	"quickdeliver-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWTSecret = []byte("test_secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // in-memory sqlite lives on a single connection
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	r := gin.New()
	routes.SetupRoutes(r, handlers.New(db))
	return r, db
}

func seedAdmin(t *testing.T, db *gorm.DB) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Name:         "Mohamed Salah",
		Email:        "admin@email.com",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}).Error)
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	reply := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	}
	return w, reply
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w, reply := do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, reply)
	token, _ := reply["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterAndLogin(t *testing.T) {
	r, _ := newTestServer(t)

	w, reply := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Ahmed", "email": "ahmed@x.com", "password": "123456",
	})
	require.Equal(t, http.StatusCreated, w.Code, reply)
	user := reply["user"].(map[string]interface{})
	assert.Equal(t, "customer", user["role"])
	assert.NotEmpty(t, reply["token"])

	// Duplicate email is a conflict
	w, _ = do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Ahmed Again", "email": "ahmed@x.com", "password": "123456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Wrong password and unknown email both refuse the login
	w, _ = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ahmed@x.com", "password": "wrong1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ghost@x.com", "password": "123456",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	login(t, r, "ahmed@x.com", "123456")
}

func TestApprovalWorkflowOverHTTP(t *testing.T) {
	r, db := newTestServer(t)
	seedAdmin(t, db)
	adminToken := login(t, r, "admin@email.com", "admin123")

	// Admin creates the merchant account
	w, _ := do(t, r, http.MethodPost, "/api/admin/users", adminToken, gin.H{
		"name": "PizzaCo", "email": "pizzaco@x.com", "password": "pizza123",
		"role": "serviceOfferor",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	merchantToken := login(t, r, "pizzaco@x.com", "pizza123")

	// Merchant submits a product; it stays invisible until approval
	w, reply := do(t, r, http.MethodPost, "/api/merchant/products", merchantToken, gin.H{
		"name": "Margherita", "price": 90, "category": "Pizza",
	})
	require.Equal(t, http.StatusCreated, w.Code, reply)
	product := reply["product"].(map[string]interface{})
	assert.Equal(t, "pending", product["status"])
	productID := int(product["id"].(float64))

	_, reply = do(t, r, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, 0.0, reply["count"])

	// Merchants cannot reach the approval endpoint
	w, _ = do(t, r, http.MethodPut, "/api/admin/products/1/approve", merchantToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = do(t, r, http.MethodPut,
		"/api/admin/products/"+strconv.Itoa(productID)+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, reply = do(t, r, http.MethodGet, "/api/products?category=Pizza", "", nil)
	assert.Equal(t, 1.0, reply["count"])
	_, reply = do(t, r, http.MethodGet, "/api/products?category=Burgers", "", nil)
	assert.Equal(t, 0.0, reply["count"])
}

func TestCheckoutOverHTTP(t *testing.T) {
	r, db := newTestServer(t)
	seedAdmin(t, db)
	adminToken := login(t, r, "admin@email.com", "admin123")

	w, reply := do(t, r, http.MethodPost, "/api/admin/products", adminToken, gin.H{
		"name": "Margherita", "price": 90, "category": "Pizza",
	})
	require.Equal(t, http.StatusCreated, w.Code, reply)
	pizzaID := int(reply["product"].(map[string]interface{})["id"].(float64))

	w, _ = do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Ahmed", "email": "ahmed@x.com", "password": "123456",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	customerToken := login(t, r, "ahmed@x.com", "123456")

	// Checkout with nothing in the cart fails cleanly
	w, _ = do(t, r, http.MethodPost, "/api/customer/checkout", customerToken, gin.H{
		"payment_method": "cash",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for i := 0; i < 2; i++ {
		w, _ = do(t, r, http.MethodPost, "/api/customer/cart", customerToken, gin.H{
			"product_id": pizzaID,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	_, reply = do(t, r, http.MethodGet, "/api/customer/cart", customerToken, nil)
	assert.Equal(t, 180.0, reply["total"])

	w, reply = do(t, r, http.MethodPost, "/api/customer/checkout", customerToken, gin.H{
		"payment_method": "cash",
	})
	require.Equal(t, http.StatusCreated, w.Code, reply)
	order := reply["order"].(map[string]interface{})
	assert.Equal(t, 180.0, order["total_price"])
	assert.Equal(t, "pending", order["status"])
	// No couriers were created, so the order is unassigned
	assert.Nil(t, order["assigned_courier"])

	_, reply = do(t, r, http.MethodGet, "/api/customer/cart", customerToken, nil)
	assert.Equal(t, 0.0, reply["count"])

	// Logout clears whatever is left in the cart
	w, _ = do(t, r, http.MethodPost, "/api/customer/cart", customerToken, gin.H{
		"product_id": pizzaID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, r, http.MethodPost, "/api/auth/logout", customerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, reply = do(t, r, http.MethodGet, "/api/customer/cart", customerToken, nil)
	assert.Equal(t, 0.0, reply["count"])
}
