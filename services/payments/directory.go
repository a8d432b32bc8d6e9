package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/chadpay/internal/pkg/models"
)

// MerchantDirectory resolves merchants and the users acting for them
type MerchantDirectory interface {
	GetMerchantByCode(ctx context.Context, code string) (*models.Merchant, error)
	GetMerchantByID(ctx context.Context, id uuid.UUID) (*models.Merchant, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.MerchantUser, error)
}

// SettingsProvider looks up platform settings such as dial templates
type SettingsProvider interface {
	GetSetting(ctx context.Context, key string) (*models.Setting, error)
}

// VisualCodeGenerator stores a scannable image for a reference and returns its handle
type VisualCodeGenerator interface {
	Generate(ctx context.Context, reference, payload string) (string, error)
}
