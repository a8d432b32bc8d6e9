package payments

import (
	"context"
	"time"

	"github.com/piresc/chadpay/internal/pkg/models"
)

// PaymentUC defines the interface for the payment request lifecycle
type PaymentUC interface {
	// CreateRequest opens a pending payment request. A nil actor is an
	// anonymous customer on the public payment page.
	CreateRequest(ctx context.Context, actor *models.Actor, req models.CreatePaymentRequest) (*models.Transaction, error)
	Confirm(ctx context.Context, actor models.Actor, reference string) (*models.Transaction, error)
	Reject(ctx context.Context, actor models.Actor, reference string) (*models.Transaction, error)
	Get(ctx context.Context, actor models.Actor, reference string) (*models.Transaction, error)
	// Status is the unauthenticated, redacted view behind a QR link
	Status(ctx context.Context, reference string) (*models.PaymentStatusView, error)
	List(ctx context.Context, actor models.Actor, filter models.TransactionFilter) ([]*models.Transaction, error)
	ExpireStale(ctx context.Context, now time.Time) (int, error)
}
