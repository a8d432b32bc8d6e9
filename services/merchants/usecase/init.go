package usecase

import (
	"context"
	"time"

	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/services/merchants"
	"golang.org/x/crypto/bcrypt"
)

// MerchantUC implements the merchant use case interface
type MerchantUC struct {
	cfg          *models.Config
	merchantRepo merchants.MerchantRepo

	now     func() time.Time
	pinCost int
}

// NewMerchantUC creates a new merchant use case
func NewMerchantUC(
	cfg *models.Config,
	merchantRepo merchants.MerchantRepo,
) *MerchantUC {
	return &MerchantUC{
		cfg:          cfg,
		merchantRepo: merchantRepo,
		now: func() time.Time {
			return time.Now().UTC()
		},
		pinCost: bcrypt.DefaultCost,
	}
}

// WithClock replaces the time source
func (uc *MerchantUC) WithClock(now func() time.Time) *MerchantUC {
	uc.now = now
	return uc
}

func (uc *MerchantUC) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, uc.cfg.Payments.StoreTimeout())
}
