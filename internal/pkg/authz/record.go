package authz

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/chadpay/internal/pkg/logger"
	"github.com/piresc/chadpay/internal/pkg/models"
)

// AppendFunc stores one audit entry
type AppendFunc func(ctx context.Context, entry *models.AuditEntry) error

// Target is what a gated action touches
type Target struct {
	MerchantID uuid.UUID
	EntityType string
	EntityRef  string
}

// Check runs Authorize and records any denial through appendFn.
func Check(ctx context.Context, actor models.Actor, action Action, target Target, at time.Time, appendFn AppendFunc) error {
	denied := Authorize(actor, action, target.MerchantID)
	if denied == nil {
		return nil
	}
	return Deny(ctx, actor, action, target, at, denied, appendFn)
}

// Deny records an authorization_denied entry for reason and returns reason.
// Failing to store the entry is logged and does not change the outcome.
func Deny(ctx context.Context, actor models.Actor, action Action, target Target, at time.Time, reason error, appendFn AppendFunc) error {
	entry := models.NewAuditEntry(actor, models.AuditActionAuthorizationDenied, target.EntityType, target.EntityRef, target.MerchantID, at)
	_ = entry.SetSnapshot(map[string]string{
		"action": string(action),
		"reason": reason.Error(),
	})

	if err := appendFn(ctx, entry); err != nil {
		logger.WarnCtx(ctx, "Failed to record authorization denial",
			logger.String("actor_id", actor.ID),
			logger.String("action", string(action)),
			logger.Err(err))
	}
	return reason
}
