package payments

import (
	"context"
	"time"

	"github.com/piresc/chadpay/internal/pkg/models"
)

// PaymentRepo defines the interface for payment transaction persistence
type PaymentRepo interface {
	// CreateTransaction inserts a pending transaction and its audit entry in
	// one database transaction. A reference collision returns
	// apperror.ErrReferenceTaken.
	CreateTransaction(ctx context.Context, txn *models.Transaction, entry *models.AuditEntry) error
	GetTransaction(ctx context.Context, reference string) (*models.Transaction, error)

	// TransitionStatus moves a transaction from transition.From to
	// transition.To only if it is still in transition.From, appending entry
	// in the same database transaction. It returns apperror.ErrNotFound or
	// apperror.ErrInvalidState when no row was updated.
	TransitionStatus(ctx context.Context, transition models.StatusTransition, entry *models.AuditEntry) (*models.Transaction, error)

	ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]string, error)
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error)

	// AppendAudit records an entry that has no accompanying state change
	AppendAudit(ctx context.Context, entry *models.AuditEntry) error
}
