package payments

import (
	"context"

	"github.com/piresc/chadpay/internal/pkg/models"
)

// PaymentGW defines the outbound event interface
type PaymentGW interface {
	PublishTransactionEvent(ctx context.Context, subject string, event models.TransactionEvent) error
}
