package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer       UserRole = "customer"
	RoleAdmin          UserRole = "admin"
	RoleServiceOfferor UserRole = "serviceOfferor"
	RoleCourier        UserRole = "courier"
)

// ValidRole reports whether r is one of the four known roles
func ValidRole(r UserRole) bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleServiceOfferor, RoleCourier:
		return true
	}
	return false
}

// DisplayName converts a role ID to its human-readable form
func (r UserRole) DisplayName() string {
	names := map[UserRole]string{
		RoleCustomer:       "Customer",
		RoleAdmin:          "Admin",
		RoleServiceOfferor: "Service Offeror",
		RoleCourier:        "Courier",
	}
	if n, ok := names[r]; ok {
		return n
	}
	return string(r)
}

// User is a single open-ended record shared by all roles. DeliveryArea is
// only meaningful for couriers and is deliberately NOT cleared when an admin
// reassigns the user to another role. Owned products, cart lines and orders
// are plain relations keyed by user id, not fields on the record.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null;default:'customer'"`
	DeliveryArea string    `json:"delivery_area,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
