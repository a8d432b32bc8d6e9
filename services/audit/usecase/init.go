package usecase

import (
	"time"

	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/services/audit"
)

// AuditUC implements the audit use case interface
type AuditUC struct {
	cfg       *models.Config
	auditRepo audit.AuditRepo
	now       func() time.Time
}

// NewAuditUC creates a new audit use case
func NewAuditUC(cfg *models.Config, auditRepo audit.AuditRepo) *AuditUC {
	return &AuditUC{
		cfg:       cfg,
		auditRepo: auditRepo,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}
