package models

import "time"

// OrderStatus represents all possible states of a delivery order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusOnTheWay  OrderStatus = "on-the-way"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// PaymentMethod is simulated only; card payments are accepted without any
// real processing.
type PaymentMethod string

const (
	PayCash PaymentMethod = "cash"
	PayCard PaymentMethod = "card"
)

type Order struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	CustomerID    uint          `json:"customer_id" gorm:"not null"`
	Customer      User          `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	CustomerName  string        `json:"customer_name"` // snapshot at checkout
	Status        OrderStatus   `json:"status" gorm:"not null;default:'pending'"`
	TotalPrice    float64       `json:"total_price"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Date          string        `json:"date"` // creation date, YYYY-MM-DD
	CourierID     *uint         `json:"assigned_courier"`
	Courier       *User         `json:"courier,omitempty" gorm:"foreignKey:CourierID"`
	Items         []OrderItem   `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// OrderItem is an immutable snapshot taken from the cart at checkout. It
// carries no product reference on purpose: editing or deleting a product
// later must never change historical orders.
type OrderItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	OrderID  uint    `json:"order_id" gorm:"not null"`
	Name     string  `json:"name"`
	Price    float64 `json:"price" gorm:"not null"`
	Quantity int     `json:"quantity" gorm:"not null"`
}

// CartItem is one line of a customer's cart. At most one line exists per
// (customer, product) pair; adding the same product again increments
// Quantity. Price is snapshotted at add time, not at checkout.
type CartItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"not null;index"`
	ProductID  uint      `json:"product_id" gorm:"not null"`
	Name       string    `json:"name"`
	Price      float64   `json:"price" gorm:"not null"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}
