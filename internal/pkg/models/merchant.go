package models

import (
	"time"

	"github.com/google/uuid"
)

// MerchantCategory represents the kind of business a merchant runs
type MerchantCategory string

const (
	MerchantCategoryBus      MerchantCategory = "bus"
	MerchantCategoryTaxi     MerchantCategory = "taxi"
	MerchantCategoryMotoTaxi MerchantCategory = "moto_taxi"
	MerchantCategoryVendor   MerchantCategory = "vendor"
)

// Valid reports whether the category is one of the known kinds
func (c MerchantCategory) Valid() bool {
	switch c {
	case MerchantCategoryBus, MerchantCategoryTaxi, MerchantCategoryMotoTaxi, MerchantCategoryVendor:
		return true
	}
	return false
}

// Merchant represents a business that collects payments
type Merchant struct {
	ID            uuid.UUID        `json:"id" db:"id"`
	Code          string           `json:"code" db:"code"`
	Name          string           `json:"name" db:"name"`
	Phone         string           `json:"phone" db:"phone"`
	Category      MerchantCategory `json:"category" db:"category"`
	Location      *string          `json:"location,omitempty" db:"location"`
	Description   *string          `json:"description,omitempty" db:"description"`
	DefaultAmount *int64           `json:"default_amount,omitempty" db:"default_amount"`
	IsActive      bool             `json:"is_active" db:"is_active"`
	CreatedAt     time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at" db:"updated_at"`
}

// MerchantUser is a person allowed to act on behalf of one merchant
type MerchantUser struct {
	ID         uuid.UUID `json:"id" db:"id"`
	MerchantID uuid.UUID `json:"merchant_id" db:"merchant_id"`
	Phone      string    `json:"phone" db:"phone"`
	Name       string    `json:"name" db:"name"`
	PINHash    string    `json:"-" db:"pin_hash"`
	IsAdmin    bool      `json:"is_admin" db:"is_admin"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Role returns the authorization role derived from the owner flag
func (u *MerchantUser) Role() Role {
	if u.IsAdmin {
		return RoleMerchantAdmin
	}
	return RoleMerchantOperator
}

// Setting is a named platform-wide configuration value
type Setting struct {
	Key         string    `json:"key" db:"key"`
	Value       string    `json:"value" db:"value"`
	Description string    `json:"description" db:"description"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
	UpdatedBy   string    `json:"updated_by" db:"updated_by"`
}

// CreateMerchantRequest is the payload for registering a merchant
type CreateMerchantRequest struct {
	Code          string           `json:"code"`
	Name          string           `json:"name"`
	Phone         string           `json:"phone"`
	Category      MerchantCategory `json:"category"`
	Location      *string          `json:"location,omitempty"`
	Description   *string          `json:"description,omitempty"`
	DefaultAmount *int64           `json:"default_amount,omitempty"`
}

// CreateMerchantUserRequest is the payload for adding a user to a merchant
type CreateMerchantUserRequest struct {
	Phone   string `json:"phone"`
	Name    string `json:"name"`
	PIN     string `json:"pin"`
	IsAdmin bool   `json:"is_admin"`
}

// UpdateSettingRequest is the payload for changing a setting value
type UpdateSettingRequest struct {
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// PublicMerchant is what a customer sees on the payment page
type PublicMerchant struct {
	Code          string            `json:"code"`
	Name          string            `json:"name"`
	Category      MerchantCategory  `json:"category"`
	Location      *string           `json:"location,omitempty"`
	Description   *string           `json:"description,omitempty"`
	DefaultAmount *int64            `json:"default_amount,omitempty"`
	Providers     []string          `json:"providers"`
	Templates     map[string]string `json:"templates,omitempty"`
}
