package usecase

import (
	"context"

	"github.com/piresc/chadpay/internal/pkg/apperror"
	"github.com/piresc/chadpay/internal/pkg/authz"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/internal/pkg/newrelic"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// List returns audit entries visible to actor. Merchant users only ever see
// their own merchant's trail, whatever merchant the filter names.
func (uc *AuditUC) List(ctx context.Context, actor models.Actor, filter models.AuditFilter) ([]*models.AuditEntry, error) {
	defer newrelic.StartSegment(ctx, "audit.List")()

	if actor.IsMerchantUser() {
		filter.MerchantID = actor.MerchantID
	}
	target := authz.Target{MerchantID: filter.MerchantID, EntityType: models.EntityAuditTrail, EntityRef: "*"}
	if err := authz.Check(ctx, actor, authz.ActionReadAudit, target, uc.now(), uc.appendAudit); err != nil {
		return nil, err
	}

	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, apperror.InvalidInput("from must be before to")
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultListLimit
	case filter.Limit > maxListLimit:
		filter.Limit = maxListLimit
	}

	storeCtx, cancel := context.WithTimeout(ctx, uc.cfg.Payments.StoreTimeout())
	defer cancel()
	entries, err := uc.auditRepo.ListEntries(storeCtx, filter)
	if err != nil {
		return nil, apperror.Storage("list audit entries", err)
	}
	return entries, nil
}

func (uc *AuditUC) appendAudit(ctx context.Context, entry *models.AuditEntry) error {
	storeCtx, cancel := context.WithTimeout(ctx, uc.cfg.Payments.StoreTimeout())
	defer cancel()
	return uc.auditRepo.AppendAudit(storeCtx, entry)
}
