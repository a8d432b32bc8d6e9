package merchants

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/chadpay/internal/pkg/models"
)

// MerchantUC defines the interface for the merchant directory, its users,
// platform settings and authentication
type MerchantUC interface {
	CreateMerchant(ctx context.Context, actor models.Actor, req models.CreateMerchantRequest) (*models.Merchant, error)
	GetMerchant(ctx context.Context, actor models.Actor, code string) (*models.Merchant, error)
	ListMerchants(ctx context.Context, actor models.Actor) ([]*models.Merchant, error)
	DeactivateMerchant(ctx context.Context, actor models.Actor, code string) (*models.Merchant, error)
	ActivateMerchant(ctx context.Context, actor models.Actor, code string) (*models.Merchant, error)

	CreateUser(ctx context.Context, actor models.Actor, merchantID uuid.UUID, req models.CreateMerchantUserRequest) (*models.MerchantUser, error)
	ListUsers(ctx context.Context, actor models.Actor, merchantID uuid.UUID) ([]*models.MerchantUser, error)
	DeactivateUser(ctx context.Context, actor models.Actor, userID uuid.UUID) (*models.MerchantUser, error)

	ListSettings(ctx context.Context, actor models.Actor) ([]*models.Setting, error)
	UpdateSetting(ctx context.Context, actor models.Actor, key string, req models.UpdateSettingRequest) (*models.Setting, error)

	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	AdminLogin(ctx context.Context, req models.AdminLoginRequest) (*models.AuthResponse, error)

	PublicProfile(ctx context.Context, code string) (*models.PublicMerchant, error)
}
