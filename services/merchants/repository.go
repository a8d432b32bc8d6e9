package merchants

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/chadpay/internal/pkg/models"
)

// MerchantRepo defines the interface for merchant, merchant user and
// settings persistence. Every mutation records its audit entry in the same
// database transaction.
type MerchantRepo interface {
	CreateMerchant(ctx context.Context, merchant *models.Merchant, entry *models.AuditEntry) error
	GetMerchantByCode(ctx context.Context, code string) (*models.Merchant, error)
	GetMerchantByID(ctx context.Context, id uuid.UUID) (*models.Merchant, error)
	ListMerchants(ctx context.Context) ([]*models.Merchant, error)
	SetMerchantActive(ctx context.Context, code string, active bool, entry *models.AuditEntry) (*models.Merchant, error)

	CreateUser(ctx context.Context, user *models.MerchantUser, entry *models.AuditEntry) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.MerchantUser, error)
	GetUserByPhone(ctx context.Context, phone string) (*models.MerchantUser, error)
	ListUsers(ctx context.Context, merchantID uuid.UUID) ([]*models.MerchantUser, error)
	DeactivateUser(ctx context.Context, id uuid.UUID, entry *models.AuditEntry) (*models.MerchantUser, error)

	GetSetting(ctx context.Context, key string) (*models.Setting, error)
	ListSettings(ctx context.Context) ([]*models.Setting, error)
	UpsertSetting(ctx context.Context, setting *models.Setting, entry *models.AuditEntry) error

	AppendAudit(ctx context.Context, entry *models.AuditEntry) error
}
