package store

import (
	"quickdeliver-api/models"

	"gorm.io/gorm"
)

// Cart manages each customer's scratch list of product lines. Lines keep
// insertion order; positional removal works against that order.
type Cart struct {
	db      *gorm.DB
	catalog *Catalog
}

func NewCart(db *gorm.DB, catalog *Catalog) *Cart {
	return &Cart{db: db, catalog: catalog}
}

// Add puts one unit of the product into the customer's cart. A repeat add of
// the same product increments the existing line instead of duplicating it.
// The price is snapshotted now; a later price edit does not touch the line.
func (s *Cart) Add(customer *models.User, productID uint) (*models.CartItem, error) {
	if customer == nil || customer.Role != models.RoleCustomer {
		return nil, ErrForbidden
	}
	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return nil, err
	}
	// Customers only ever see approved products; a pending id is treated
	// the same as a missing one.
	if product.Status != models.ProductApproved {
		return nil, ErrNotFound
	}
	var line models.CartItem
	err = s.db.Where("customer_id = ? AND product_id = ?", customer.ID, productID).First(&line).Error
	if err == nil {
		line.Quantity++
		if err := s.db.Save(&line).Error; err != nil {
			return nil, err
		}
		return &line, nil
	}
	line = models.CartItem{
		CustomerID: customer.ID,
		ProductID:  productID,
		Name:       product.Name,
		Price:      product.Price,
		Quantity:   1,
	}
	if err := s.db.Create(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

// Remove deletes the whole line at the given position. There is no
// partial-quantity decrement.
func (s *Cart) Remove(customer *models.User, index int) error {
	lines, err := s.Lines(customer)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(lines) {
		return ErrIndexOutOfRange
	}
	return s.db.Delete(&lines[index]).Error
}

// Lines returns the customer's cart in insertion order
func (s *Cart) Lines(customer *models.User) ([]models.CartItem, error) {
	if customer == nil {
		return nil, ErrForbidden
	}
	var lines []models.CartItem
	err := s.db.Where("customer_id = ?", customer.ID).Order("id asc").Find(&lines).Error
	return lines, err
}

// Total sums price*quantity over all lines
func (s *Cart) Total(customer *models.User) (float64, error) {
	lines, err := s.Lines(customer)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total, nil
}

// Clear empties the cart. Called after checkout and on logout.
func (s *Cart) Clear(customer *models.User) error {
	if customer == nil {
		return ErrForbidden
	}
	return s.db.Where("customer_id = ?", customer.ID).Delete(&models.CartItem{}).Error
}
