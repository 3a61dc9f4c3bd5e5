package store

import (
	"errors"
	"math/rand"
	"time"

	"quickdeliver-api/models"
	"quickdeliver-api/statemachine"

	"gorm.io/gorm"
)

// Ledger is the append-only set of placed orders. Orders are never deleted;
// only their status changes after creation.
type Ledger struct {
	db       *gorm.DB
	cart     *Cart
	identity *Identity
}

func NewLedger(db *gorm.DB, cart *Cart, identity *Identity) *Ledger {
	return &Ledger{db: db, cart: cart, identity: identity}
}

// PlaceOrder turns the customer's cart into an order. Items and the customer
// name are copied as immutable snapshots, the total is fixed from the cart,
// a courier is drawn at random from all courier accounts (the order stays
// unassigned when none exist), and the cart is cleared.
func (s *Ledger) PlaceOrder(customer *models.User, payment models.PaymentMethod) (*models.Order, error) {
	if customer == nil || customer.Role != models.RoleCustomer {
		return nil, ErrForbidden
	}
	if payment != models.PayCash && payment != models.PayCard {
		return nil, ErrInvalidInput
	}
	lines, err := s.cart.Lines(customer)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var items []models.OrderItem
	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
		items = append(items, models.OrderItem{
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}

	order := models.Order{
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		Status:        models.StatusPending,
		TotalPrice:    total,
		PaymentMethod: payment,
		Date:          time.Now().Format("2006-01-02"),
		CourierID:     s.pickRandomCourier(),
		Items:         items,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, err
	}
	if err := s.cart.Clear(customer); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListForCustomer returns the customer's orders in insertion order
func (s *Ledger) ListForCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").Where("customer_id = ?", customerID).Order("id asc").Find(&orders).Error
	return orders, err
}

// ListForCourier returns all orders assigned to the courier, insertion order
func (s *Ledger) ListForCourier(courierID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").Where("courier_id = ?", courierID).Order("id asc").Find(&orders).Error
	return orders, err
}

// ListAll returns the full ledger for the admin dashboard
func (s *Ledger) ListAll() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").Order("id asc").Find(&orders).Error
	return orders, err
}

// Cancel sets a pending order to cancelled. Only the owning customer may
// cancel, and only while the order has not left the pending state.
func (s *Ledger) Cancel(actor *models.User, orderID uint) (*models.Order, error) {
	if actor == nil || actor.Role != models.RoleCustomer {
		return nil, ErrForbidden
	}
	order, err := s.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != actor.ID {
		return nil, ErrForbidden
	}
	if !statemachine.CanCancel(order.Status) {
		return nil, ErrInvalidTransition
	}
	order.Status = models.StatusCancelled
	if err := s.db.Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// SetStatus applies a courier status update. Any courier-settable status is
// accepted from any prior state; the intended pending → preparing →
// on-the-way → delivered sequence is advisory, not enforced.
func (s *Ledger) SetStatus(actor *models.User, orderID uint, newStatus models.OrderStatus) (*models.Order, error) {
	if actor == nil || actor.Role != models.RoleCourier {
		return nil, ErrForbidden
	}
	if !statemachine.CourierSettable(newStatus) {
		return nil, ErrInvalidTransition
	}
	order, err := s.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	order.Status = newStatus
	if err := s.db.Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Ledger) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *Ledger) pickRandomCourier() *uint {
	couriers, err := s.identity.ListCouriers()
	if err != nil || len(couriers) == 0 {
		return nil
	}
	id := couriers[rand.Intn(len(couriers))].ID
	return &id
}
