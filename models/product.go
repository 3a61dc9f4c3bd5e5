package models

import "time"

// ProductStatus tracks the admin approval workflow
type ProductStatus string

const (
	ProductPending  ProductStatus = "pending"
	ProductApproved ProductStatus = "approved"
)

// Fixed product categories offered on the platform
const (
	CategoryPizza    = "Pizza"
	CategoryBurgers  = "Burgers"
	CategoryDrinks   = "Drinks"
	CategoryDesserts = "Desserts"
	CategoryOther    = "Other"
)

// PlatformOwnerName is the denormalized owner name stamped on products the
// admin adds directly (OwnerID stays null for those).
const PlatformOwnerName = "QuickDeliver"

var categoryIcons = map[string]string{
	CategoryPizza:    "🍕",
	CategoryBurgers:  "🍔",
	CategoryDrinks:   "🥤",
	CategoryDesserts: "🍰",
}

// CategoryIcon returns the display glyph for a category, with a generic
// fallback for anything outside the mapped four.
func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return "📦"
}

// ValidCategory reports whether the category is one the platform sells
func ValidCategory(category string) bool {
	switch category {
	case CategoryPizza, CategoryBurgers, CategoryDrinks, CategoryDesserts, CategoryOther:
		return true
	}
	return false
}

// Product is a catalog entry. OwnerName is a snapshot of the owner's name at
// creation time and intentionally does not follow later renames. Only
// approved products are visible to customers.
type Product struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	Name      string        `json:"name" gorm:"not null"`
	Price     float64       `json:"price" gorm:"not null"`
	Category  string        `json:"category" gorm:"not null"`
	Status    ProductStatus `json:"status" gorm:"not null;default:'pending'"`
	OwnerID   *uint         `json:"owner_id"`
	Owner     *User         `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	OwnerName string        `json:"owner_name"`
	Icon      string        `json:"icon"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
