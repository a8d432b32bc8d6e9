package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuditAction names what an audit entry records
type AuditAction string

const (
	AuditActionTransactionCreated   AuditAction = "transaction_created"
	AuditActionTransactionConfirmed AuditAction = "transaction_confirmed"
	AuditActionTransactionRejected  AuditAction = "transaction_rejected"
	AuditActionTransactionExpired   AuditAction = "transaction_expired"
	AuditActionSettingUpdated       AuditAction = "setting_updated"
	AuditActionMerchantCreated      AuditAction = "merchant_created"
	AuditActionMerchantDeactivated  AuditAction = "merchant_deactivated"
	AuditActionMerchantActivated    AuditAction = "merchant_activated"
	AuditActionUserCreated          AuditAction = "merchant_user_created"
	AuditActionUserDeactivated      AuditAction = "merchant_user_deactivated"
	AuditActionAuthorizationDenied  AuditAction = "authorization_denied"
)

// Audit entity types
const (
	EntityTransaction  = "transaction"
	EntityMerchant     = "merchant"
	EntityMerchantUser = "merchant_user"
	EntitySetting      = "setting"
	EntityAuditTrail   = "audit_trail"
)

// TransitionAction maps a terminal status to its audit action
func TransitionAction(to TransactionStatus) AuditAction {
	switch to {
	case TransactionStatusConfirmed:
		return AuditActionTransactionConfirmed
	case TransactionStatusRejected:
		return AuditActionTransactionRejected
	case TransactionStatusExpired:
		return AuditActionTransactionExpired
	}
	return AuditActionTransactionCreated
}

// AuditEntry is an immutable record of a state change or authorization decision
type AuditEntry struct {
	Seq        int64           `json:"seq" db:"seq"`
	OccurredAt time.Time       `json:"occurred_at" db:"occurred_at"`
	ActorID    string          `json:"actor_id" db:"actor_id"`
	ActorRole  Role            `json:"actor_role" db:"actor_role"`
	Action     AuditAction     `json:"action" db:"action"`
	EntityType string          `json:"entity_type" db:"entity_type"`
	EntityRef  string          `json:"entity_ref" db:"entity_ref"`
	MerchantID uuid.NullUUID   `json:"merchant_id" db:"merchant_id"`
	Snapshot   json.RawMessage `json:"snapshot" db:"snapshot"`
}

// NewAuditEntry builds an entry for the given actor and target
func NewAuditEntry(actor Actor, action AuditAction, entityType, entityRef string, merchantID uuid.UUID, at time.Time) *AuditEntry {
	entry := &AuditEntry{
		OccurredAt: at,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Action:     action,
		EntityType: entityType,
		EntityRef:  entityRef,
	}
	if merchantID != uuid.Nil {
		entry.MerchantID = uuid.NullUUID{UUID: merchantID, Valid: true}
	}
	return entry
}

// SetSnapshot stores the JSON form of v as the entry snapshot
func (e *AuditEntry) SetSnapshot(v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal audit snapshot: %w", err)
	}
	e.Snapshot = raw
	return nil
}

// AuditFilter narrows an audit trail query. AfterSeq pages forward through
// the trail.
type AuditFilter struct {
	MerchantID uuid.UUID
	EntityRef  string
	Action     AuditAction
	From       *time.Time
	To         *time.Time
	AfterSeq   int64
	Limit      int
}
