package config

import (
	"os"

	"quickdeliver-api/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemoData loads the demo marketplace: one admin, three customers, two
// merchants, two couriers, ten products (one still pending review) and one
// in-flight sample order. Skipped when QUICKDELIVER_SEED=0 or when users
// already exist.
func SeedDemoData(db *gorm.DB) {
	if os.Getenv("QUICKDELIVER_SEED") == "0" {
		return
	}
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	users := []struct {
		name, email, password string
		role                  models.UserRole
		area                  string
	}{
		{"Mohamed Salah", "admin@email.com", "admin123", models.RoleAdmin, ""},
		{"Ahmed Hassan", "ahmed@email.com", "123456", models.RoleCustomer, ""},
		{"Fatma Ali", "fatma@email.com", "123456", models.RoleCustomer, ""},
		{"Salma Mostafa", "salma@email.com", "123456", models.RoleCustomer, ""},
		{"Pizza King Restaurant", "pizza@email.com", "pizza123", models.RoleServiceOfferor, ""},
		{"Burger House Egypt", "burger@email.com", "burger123", models.RoleServiceOfferor, ""},
		{"Nour El-Din", "nour@email.com", "nour123", models.RoleCourier, "Downtown Cairo"},
		{"Karim Mahmoud", "karim@email.com", "karim123", models.RoleCourier, "Maadi"},
	}
	created := make([]models.User, 0, len(users))
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			logrus.WithError(err).Fatal("failed to hash seed password")
		}
		user := models.User{
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			DeliveryArea: u.area,
		}
		if err := db.Create(&user).Error; err != nil {
			logrus.WithError(err).Fatal("failed to seed users")
		}
		created = append(created, user)
	}
	pizzaKing := created[4]
	burgerHouse := created[5]

	// Prices are in EGP
	products := []models.Product{
		{Name: "Margherita Pizza", Price: 90, Category: models.CategoryPizza, Status: models.ProductApproved, OwnerID: &pizzaKing.ID, OwnerName: pizzaKing.Name},
		{Name: "Pepperoni Pizza", Price: 120, Category: models.CategoryPizza, Status: models.ProductApproved, OwnerID: &pizzaKing.ID, OwnerName: pizzaKing.Name},
		{Name: "Vegetable Pizza", Price: 85, Category: models.CategoryPizza, Status: models.ProductApproved, OwnerID: &pizzaKing.ID, OwnerName: pizzaKing.Name},
		{Name: "Classic Beef Burger", Price: 75, Category: models.CategoryBurgers, Status: models.ProductApproved, OwnerID: &burgerHouse.ID, OwnerName: burgerHouse.Name},
		{Name: "Crispy Chicken Burger", Price: 65, Category: models.CategoryBurgers, Status: models.ProductApproved, OwnerID: &burgerHouse.ID, OwnerName: burgerHouse.Name},
		{Name: "Fresh Orange Juice", Price: 25, Category: models.CategoryDrinks, Status: models.ProductApproved, OwnerName: models.PlatformOwnerName},
		{Name: "Coca Cola", Price: 15, Category: models.CategoryDrinks, Status: models.ProductApproved, OwnerName: models.PlatformOwnerName},
		{Name: "Kunafa Nabulsia", Price: 45, Category: models.CategoryDesserts, Status: models.ProductApproved, OwnerName: models.PlatformOwnerName},
		{Name: "Om Ali", Price: 35, Category: models.CategoryDesserts, Status: models.ProductApproved, OwnerName: models.PlatformOwnerName},
		{Name: "Seafood Pizza Special", Price: 150, Category: models.CategoryPizza, Status: models.ProductPending, OwnerID: &pizzaKing.ID, OwnerName: pizzaKing.Name},
	}
	for i := range products {
		products[i].Icon = models.CategoryIcon(products[i].Category)
		if err := db.Create(&products[i]).Error; err != nil {
			logrus.WithError(err).Fatal("failed to seed products")
		}
	}

	ahmed := created[1]
	nour := created[6]
	order := models.Order{
		CustomerID:    ahmed.ID,
		CustomerName:  ahmed.Name,
		Status:        models.StatusPreparing,
		TotalPrice:    120,
		PaymentMethod: models.PayCash,
		Date:          "2025-12-25",
		CourierID:     &nour.ID,
		Items: []models.OrderItem{
			{Name: "Margherita Pizza", Price: 90, Quantity: 1},
			{Name: "Coca Cola", Price: 15, Quantity: 2},
		},
	}
	if err := db.Create(&order).Error; err != nil {
		logrus.WithError(err).Fatal("failed to seed sample order")
	}

	logrus.WithFields(logrus.Fields{
		"users":    len(created),
		"products": len(products),
	}).Info("demo data seeded")
}
