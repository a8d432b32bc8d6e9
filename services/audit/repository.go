package audit

import (
	"context"

	"github.com/piresc/chadpay/internal/pkg/models"
)

// AuditRepo defines the interface for reading the audit trail
type AuditRepo interface {
	ListEntries(ctx context.Context, filter models.AuditFilter) ([]*models.AuditEntry, error)
	AppendAudit(ctx context.Context, entry *models.AuditEntry) error
}
