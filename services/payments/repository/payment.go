package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/chadpay/internal/pkg/apperror"
	"github.com/piresc/chadpay/internal/pkg/audit"
	"github.com/piresc/chadpay/internal/pkg/database"
	"github.com/piresc/chadpay/internal/pkg/models"
)

const transactionColumns = `
	id, reference, merchant_id, amount, customer_phone, provider,
	dial_string, qr_code_handle, status, resolved_by, resolved_at,
	created_at, updated_at`

const insertTransactionQuery = `
	INSERT INTO payment_transactions (
		id, reference, merchant_id, amount, customer_phone, provider,
		dial_string, qr_code_handle, status, created_at, updated_at
	) VALUES (
		:id, :reference, :merchant_id, :amount, :customer_phone, :provider,
		:dial_string, :qr_code_handle, :status, :created_at, :updated_at
	)`

const transitionStatusQuery = `
	UPDATE payment_transactions
	SET status = $1, resolved_by = $2, resolved_at = $3, updated_at = $3
	WHERE reference = $4 AND status = $5
	RETURNING` + transactionColumns

// PaymentRepo implements the payment repository interface
type PaymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// CreateTransaction inserts a pending transaction together with its audit entry
func (r *PaymentRepo) CreateTransaction(ctx context.Context, txn *models.Transaction, entry *models.AuditEntry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx, insertTransactionQuery, txn); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", apperror.ErrReferenceTaken, txn.Reference)
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err := audit.Append(ctx, tx, entry); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetTransaction retrieves a transaction by reference
func (r *PaymentRepo) GetTransaction(ctx context.Context, reference string) (*models.Transaction, error) {
	query := `SELECT` + transactionColumns + ` FROM payment_transactions WHERE reference = $1`

	var txn models.Transaction
	if err := r.db.GetContext(ctx, &txn, query, reference); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("transaction %s", reference)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

// TransitionStatus applies a compare-and-set status change and records entry
// in the same database transaction
func (r *PaymentRepo) TransitionStatus(ctx context.Context, transition models.StatusTransition, entry *models.AuditEntry) (*models.Transaction, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var txn models.Transaction
	err = tx.QueryRowxContext(ctx, transitionStatusQuery,
		transition.To,
		transition.ActorID,
		transition.At,
		transition.Reference,
		transition.From,
	).StructScan(&txn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.explainMissedTransition(ctx, tx, transition)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}

	entry.MerchantID = uuid.NullUUID{UUID: txn.MerchantID, Valid: true}
	if err := entry.SetSnapshot(txn); err != nil {
		return nil, err
	}
	if err := audit.Append(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &txn, nil
}

// explainMissedTransition distinguishes an unknown reference from one that is
// no longer in the expected state
func (r *PaymentRepo) explainMissedTransition(ctx context.Context, tx *sqlx.Tx, transition models.StatusTransition) error {
	var status models.TransactionStatus
	err := tx.GetContext(ctx, &status, `SELECT status FROM payment_transactions WHERE reference = $1`, transition.Reference)
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.NotFound("transaction %s", transition.Reference)
	}
	if err != nil {
		return fmt.Errorf("failed to get transaction status: %w", err)
	}
	return fmt.Errorf("%w: transaction %s is %s, not %s",
		apperror.ErrInvalidState, transition.Reference, status, transition.From)
}

// ListStalePending returns references of pending transactions created before cutoff
func (r *PaymentRepo) ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]string, error) {
	query := `
		SELECT reference FROM payment_transactions
		WHERE status = $1 AND created_at < $2
		ORDER BY created_at
		LIMIT $3`

	refs := []string{}
	if err := r.db.SelectContext(ctx, &refs, query, models.TransactionStatusPending, cutoff, limit); err != nil {
		return nil, fmt.Errorf("failed to list stale transactions: %w", err)
	}
	return refs, nil
}

// ListTransactions returns the most recent transactions matching filter
func (r *PaymentRepo) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	var (
		conditions []string
		args       []interface{}
	)
	if filter.MerchantID != uuid.Nil {
		args = append(args, filter.MerchantID)
		conditions = append(conditions, fmt.Sprintf("merchant_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT` + transactionColumns + ` FROM payment_transactions`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	txns := []*models.Transaction{}
	if err := r.db.SelectContext(ctx, &txns, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// AppendAudit records an entry outside of any state change
func (r *PaymentRepo) AppendAudit(ctx context.Context, entry *models.AuditEntry) error {
	return audit.Append(ctx, r.db, entry)
}
