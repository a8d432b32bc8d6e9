package audit

import (
	"context"

	"github.com/piresc/chadpay/internal/pkg/models"
)

// AuditUC defines the interface for querying the audit trail
type AuditUC interface {
	List(ctx context.Context, actor models.Actor, filter models.AuditFilter) ([]*models.AuditEntry, error)
}
