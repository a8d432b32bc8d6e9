package models

import "github.com/google/uuid"

// Role is the authorization role an identity acts under
type Role string

const (
	RolePlatformAdmin    Role = "admin"
	RoleMerchantAdmin    Role = "merchant_admin"
	RoleMerchantOperator Role = "merchant_operator"
	RoleSystem           Role = "system"
	RolePublic           Role = "public"
)

const (
	// SystemActorID identifies automated transitions such as expiry
	SystemActorID = "system"
	// PublicActorID identifies anonymous customers on the payment page
	PublicActorID = "public"
)

// Actor is the identity on whose behalf an operation runs
type Actor struct {
	ID         string    `json:"id"`
	MerchantID uuid.UUID `json:"merchant_id,omitempty"`
	Role       Role      `json:"role"`
}

// SystemActor returns the actor used for scheduled maintenance
func SystemActor() Actor {
	return Actor{ID: SystemActorID, Role: RoleSystem}
}

// PublicActor returns the actor used for anonymous requests
func PublicActor() Actor {
	return Actor{ID: PublicActorID, Role: RolePublic}
}

// IsMerchantUser reports whether the actor is bound to a merchant
func (a Actor) IsMerchantUser() bool {
	return a.Role == RoleMerchantAdmin || a.Role == RoleMerchantOperator
}

// LoginRequest holds merchant PIN credentials
type LoginRequest struct {
	Phone string `json:"phone"`
	PIN   string `json:"pin"`
}

// AdminLoginRequest holds platform administrator credentials
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned after a successful login
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	Actor     Actor  `json:"actor"`
}
