package store

import (
	"errors"
	"strings"

	"quickdeliver-api/models"

	"gorm.io/gorm"
)

// Catalog holds product records and enforces the approval workflow and
// ownership rules.
type Catalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// CategoryAll disables category filtering in ListVisible
const CategoryAll = "all"

// ListVisible returns approved products in insertion order, optionally
// narrowed to one category. Pending products are never included.
func (s *Catalog) ListVisible(category string) ([]models.Product, error) {
	var products []models.Product
	q := s.db.Where("status = ?", models.ProductApproved).Order("id asc")
	if category != "" && category != CategoryAll {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&products).Error
	return products, err
}

// ListPending returns products awaiting admin review, insertion order
func (s *Catalog) ListPending() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("status = ?", models.ProductPending).Order("id asc").Find(&products).Error
	return products, err
}

// ListByOwner returns all products owned by the given user, any status
func (s *Catalog) ListByOwner(ownerID uint) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("owner_id = ?", ownerID).Order("id asc").Find(&products).Error
	return products, err
}

// ListAll returns the whole catalog regardless of status, for the admin view
func (s *Catalog) ListAll() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Order("id asc").Find(&products).Error
	return products, err
}

// Submit creates a product. Admin submissions are auto-approved and
// platform-owned; service offeror submissions start pending and belong to
// the submitter. Other roles may not submit at all.
func (s *Catalog) Submit(actor *models.User, name string, price float64, category string) (*models.Product, error) {
	if err := validateProductInput(name, price, category); err != nil {
		return nil, err
	}
	product := models.Product{
		Name:     strings.TrimSpace(name),
		Price:    price,
		Category: category,
		Icon:     models.CategoryIcon(category),
	}
	switch {
	case actor != nil && actor.Role == models.RoleAdmin:
		product.Status = models.ProductApproved
		product.OwnerID = nil
		product.OwnerName = models.PlatformOwnerName
	case actor != nil && actor.Role == models.RoleServiceOfferor:
		product.Status = models.ProductPending
		ownerID := actor.ID
		product.OwnerID = &ownerID
		product.OwnerName = actor.Name // snapshot, survives later renames
	default:
		return nil, ErrForbidden
	}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Approve flips a pending product to approved. Approving an already
// approved product is a no-op success.
func (s *Catalog) Approve(actor *models.User, productID uint) (*models.Product, error) {
	if actor == nil || actor.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}
	product, err := s.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if product.Status == models.ProductApproved {
		return product, nil
	}
	product.Status = models.ProductApproved
	if err := s.db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Reject removes a product from the catalog entirely; nothing is archived
func (s *Catalog) Reject(actor *models.User, productID uint) error {
	if actor == nil || actor.Role != models.RoleAdmin {
		return ErrForbidden
	}
	product, err := s.FindByID(productID)
	if err != nil {
		return err
	}
	return s.db.Delete(product).Error
}

// Update overwrites name, price and category. Status and ownership never
// change here. Allowed for the admin and for the product's owner.
func (s *Catalog) Update(actor *models.User, productID uint, name string, price float64, category string) (*models.Product, error) {
	product, err := s.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, product) {
		return nil, ErrForbidden
	}
	if err := validateProductInput(name, price, category); err != nil {
		return nil, err
	}
	product.Name = strings.TrimSpace(name)
	product.Price = price
	product.Category = category
	product.Icon = models.CategoryIcon(category)
	if err := s.db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Remove deletes a product of any status. Same authorization rule as Update.
func (s *Catalog) Remove(actor *models.User, productID uint) error {
	product, err := s.FindByID(productID)
	if err != nil {
		return err
	}
	if !canManage(actor, product) {
		return ErrForbidden
	}
	return s.db.Delete(product).Error
}

func (s *Catalog) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func canManage(actor *models.User, product *models.Product) bool {
	if actor == nil {
		return false
	}
	if actor.Role == models.RoleAdmin {
		return true
	}
	return actor.Role == models.RoleServiceOfferor &&
		product.OwnerID != nil && *product.OwnerID == actor.ID
}

func validateProductInput(name string, price float64, category string) error {
	if strings.TrimSpace(name) == "" || category == "" {
		return ErrInvalidInput
	}
	if price <= 0 {
		return ErrInvalidInput
	}
	if !models.ValidCategory(category) {
		return ErrInvalidInput
	}
	return nil
}
