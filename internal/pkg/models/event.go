package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionEvent is published after a transaction is created or resolved
type TransactionEvent struct {
	Reference  string            `json:"reference"`
	MerchantID uuid.UUID         `json:"merchant_id"`
	Amount     int64             `json:"amount"`
	Status     TransactionStatus `json:"status"`
	ActorID    string            `json:"actor_id"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// NewTransactionEvent builds the event for the transaction's current state
func NewTransactionEvent(t *Transaction, actorID string, at time.Time) TransactionEvent {
	return TransactionEvent{
		Reference:  t.Reference,
		MerchantID: t.MerchantID,
		Amount:     t.Amount,
		Status:     t.Status,
		ActorID:    actorID,
		OccurredAt: at,
	}
}

// SweepResult is the reply to a sweep request
type SweepResult struct {
	Expired int    `json:"expired"`
	Error   string `json:"error,omitempty"`
}

// SweepRequest triggers an expiry sweep. Now defaults to the receiver's clock.
type SweepRequest struct {
	Now *time.Time `json:"now,omitempty"`
}
