// Package authz decides whether an actor may perform an action on a merchant's data.
package authz

import (
	"github.com/google/uuid"
	"github.com/piresc/chadpay/internal/pkg/apperror"
	"github.com/piresc/chadpay/internal/pkg/models"
)

// Action is an operation subject to authorization
type Action string

const (
	ActionCreatePayment   Action = "create_payment"
	ActionReadPayment     Action = "read_payment"
	ActionConfirmPayment  Action = "confirm_payment"
	ActionRejectPayment   Action = "reject_payment"
	ActionManageUsers     Action = "manage_merchant_users"
	ActionReadUsers       Action = "read_merchant_users"
	ActionManageMerchants Action = "manage_merchants"
	ActionManageSettings  Action = "manage_settings"
	ActionReadSettings    Action = "read_settings"
	ActionReadAudit       Action = "read_audit"
)

// Scope is how far a grant reaches
type Scope int

const (
	// ScopeNone is the zero value: no grant
	ScopeNone Scope = iota
	// ScopeOwnMerchant allows acting only on the actor's merchant
	ScopeOwnMerchant
	// ScopeAny allows acting on every merchant
	ScopeAny
)

var policy = map[models.Role]map[Action]Scope{
	models.RolePlatformAdmin: {
		ActionReadPayment:     ScopeAny,
		ActionManageUsers:     ScopeAny,
		ActionReadUsers:       ScopeAny,
		ActionManageMerchants: ScopeAny,
		ActionManageSettings:  ScopeAny,
		ActionReadSettings:    ScopeAny,
		ActionReadAudit:       ScopeAny,
	},
	models.RoleMerchantAdmin: {
		ActionCreatePayment:  ScopeOwnMerchant,
		ActionReadPayment:    ScopeOwnMerchant,
		ActionConfirmPayment: ScopeOwnMerchant,
		ActionRejectPayment:  ScopeOwnMerchant,
		ActionManageUsers:    ScopeOwnMerchant,
		ActionReadUsers:      ScopeOwnMerchant,
		ActionReadAudit:      ScopeOwnMerchant,
	},
	models.RoleMerchantOperator: {
		ActionCreatePayment:  ScopeOwnMerchant,
		ActionReadPayment:    ScopeOwnMerchant,
		ActionConfirmPayment: ScopeOwnMerchant,
		ActionRejectPayment:  ScopeOwnMerchant,
		ActionReadUsers:      ScopeOwnMerchant,
		ActionReadAudit:      ScopeOwnMerchant,
	},
}

// ScopeFor returns the grant a role holds for an action
func ScopeFor(role models.Role, action Action) Scope {
	return policy[role][action]
}

// Authorize returns nil when actor may perform action on merchantID's data,
// and an ErrForbidden-wrapped error otherwise. Pass uuid.Nil for actions that
// are not tied to one merchant.
func Authorize(actor models.Actor, action Action, merchantID uuid.UUID) error {
	switch ScopeFor(actor.Role, action) {
	case ScopeAny:
		return nil
	case ScopeOwnMerchant:
		if actor.MerchantID != uuid.Nil && actor.MerchantID == merchantID {
			return nil
		}
		return apperror.Forbidden("%s may only %s for their own merchant", actor.Role, action)
	default:
		return apperror.Forbidden("role %q may not %s", actor.Role, action)
	}
}
