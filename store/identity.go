package store

import (
	"errors"
	"strings"

	"quickdeliver-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Identity holds user records, resolves credentials and enforces email
// uniqueness. Email comparison is exact and case-sensitive.
type Identity struct {
	db *gorm.DB
}

func NewIdentity(db *gorm.DB) *Identity {
	return &Identity{db: db}
}

// Register self-signs-up a new account. The role is always customer; other
// roles are created by the admin through CreateAccount.
func (s *Identity) Register(name, email, password string) (*models.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrInvalidInput
	}
	if err := s.checkEmailFree(email, 0); err != nil {
		return nil, ErrDuplicateEmail
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateAccount is the admin path for creating accounts of any role.
// Couriers get the "Not Set" delivery area placeholder the original
// platform used until the courier fills in their own.
func (s *Identity) CreateAccount(actor *models.User, name, email, password string, role models.UserRole) (*models.User, error) {
	if actor == nil || actor.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}
	if role == "" {
		return nil, ErrMissingRole
	}
	if !models.ValidRole(role) {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrInvalidInput
	}
	if err := s.checkEmailFree(email, 0); err != nil {
		return nil, ErrDuplicateEmail
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if role == models.RoleCourier {
		user.DeliveryArea = "Not Set"
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate resolves credentials. Unknown emails and wrong passwords are
// reported as distinct failures, as the original login screen did.
func (s *Identity) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownEmail
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}
	return &user, nil
}

// EditUser mutates exactly one of name, email, role, password on the target
// user. Changing role to courier backfills the delivery area placeholder if
// the user never had one; nothing from the prior role is ever cleared.
func (s *Identity) EditUser(actor *models.User, userID uint, field, value string) (*models.User, error) {
	if actor == nil || actor.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}
	user, err := s.FindByID(userID)
	if err != nil {
		return nil, err
	}
	switch field {
	case "name":
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return nil, ErrInvalidInput
		}
		user.Name = trimmed
	case "email":
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return nil, ErrInvalidInput
		}
		if err := s.checkEmailFree(trimmed, userID); err != nil {
			return nil, ErrEmailInUse
		}
		user.Email = trimmed
	case "role":
		role := models.UserRole(value)
		if role == "" {
			return nil, ErrMissingRole
		}
		if !models.ValidRole(role) {
			return nil, ErrInvalidInput
		}
		user.Role = role
		if role == models.RoleCourier && user.DeliveryArea == "" {
			user.DeliveryArea = "Not Set"
		}
	case "password":
		if strings.TrimSpace(value) == "" {
			return nil, ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(value), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	default:
		return nil, ErrInvalidInput
	}
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateDeliveryArea is courier self-service. The stored record is the single
// authoritative copy of the area.
func (s *Identity) UpdateDeliveryArea(actor *models.User, newArea string) (*models.User, error) {
	if actor == nil || actor.Role != models.RoleCourier {
		return nil, ErrForbidden
	}
	trimmed := strings.TrimSpace(newArea)
	if trimmed == "" {
		return nil, ErrEmptyArea
	}
	user, err := s.FindByID(actor.ID)
	if err != nil {
		return nil, err
	}
	user.DeliveryArea = trimmed
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Identity) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Identity) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListCouriers returns every courier account, insertion order
func (s *Identity) ListCouriers() ([]models.User, error) {
	var couriers []models.User
	err := s.db.Where("role = ?", models.RoleCourier).Order("id asc").Find(&couriers).Error
	return couriers, err
}

// ListAll returns every account, optionally filtered by role, for the admin
// users table.
func (s *Identity) ListAll(role models.UserRole) ([]models.User, error) {
	var users []models.User
	q := s.db.Order("id asc")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	err := q.Find(&users).Error
	return users, err
}

func (s *Identity) checkEmailFree(email string, excludeID uint) error {
	var existing models.User
	q := s.db.Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.First(&existing).Error; err == nil {
		return ErrEmailInUse
	}
	return nil
}
