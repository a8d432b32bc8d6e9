package usecase

import (
	"time"

	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/internal/utils"
	"github.com/piresc/chadpay/services/payments"
)

// PaymentUC implements the payment use case interface
type PaymentUC struct {
	cfg         *models.Config
	paymentRepo payments.PaymentRepo
	paymentGW   payments.PaymentGW
	merchants   payments.MerchantDirectory
	settings    payments.SettingsProvider
	qrcodes     payments.VisualCodeGenerator

	now          func() time.Time
	newReference func() (string, error)
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	paymentRepo payments.PaymentRepo,
	paymentGW payments.PaymentGW,
	merchants payments.MerchantDirectory,
	settings payments.SettingsProvider,
	qrcodes payments.VisualCodeGenerator,
) *PaymentUC {
	length := cfg.Payments.ReferenceLength
	if length <= 0 {
		length = 8
	}
	return &PaymentUC{
		cfg:         cfg,
		paymentRepo: paymentRepo,
		paymentGW:   paymentGW,
		merchants:   merchants,
		settings:    settings,
		qrcodes:     qrcodes,
		now: func() time.Time {
			return time.Now().UTC()
		},
		newReference: func() (string, error) {
			return utils.GenerateReferenceCode(length)
		},
	}
}

// WithClock replaces the time source
func (uc *PaymentUC) WithClock(now func() time.Time) *PaymentUC {
	uc.now = now
	return uc
}
