package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/chadpay/internal/pkg/apperror"
	"github.com/piresc/chadpay/internal/pkg/audit"
	"github.com/piresc/chadpay/internal/pkg/database"
	"github.com/piresc/chadpay/internal/pkg/models"
)

const merchantColumns = `
	id, code, name, phone, category, location, description,
	default_amount, is_active, created_at, updated_at`

// MerchantRepo implements the merchant repository interface
type MerchantRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewMerchantRepository creates a new merchant repository. redisClient may be
// nil, in which case settings are always read from Postgres.
func NewMerchantRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *MerchantRepo {
	return &MerchantRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// CreateMerchant inserts a merchant and its merchant_created audit entry
func (r *MerchantRepo) CreateMerchant(ctx context.Context, merchant *models.Merchant, entry *models.AuditEntry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO merchants (
			id, code, name, phone, category, location, description,
			default_amount, is_active, created_at, updated_at
		) VALUES (
			:id, :code, :name, :phone, :category, :location, :description,
			:default_amount, :is_active, :created_at, :updated_at
		)`
	if _, err := tx.NamedExecContext(ctx, query, merchant); err != nil {
		if database.IsUniqueViolation(err) {
			return apperror.InvalidInput("merchant code %s is already registered", merchant.Code)
		}
		return fmt.Errorf("failed to insert merchant: %w", err)
	}

	if err := entry.SetSnapshot(merchant); err != nil {
		return err
	}
	if err := audit.Append(ctx, tx, entry); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetMerchantByCode retrieves a merchant by its public code
func (r *MerchantRepo) GetMerchantByCode(ctx context.Context, code string) (*models.Merchant, error) {
	return r.getMerchantByField(ctx, "code", code)
}

// GetMerchantByID retrieves a merchant by ID
func (r *MerchantRepo) GetMerchantByID(ctx context.Context, id uuid.UUID) (*models.Merchant, error) {
	return r.getMerchantByField(ctx, "id", id)
}

func (r *MerchantRepo) getMerchantByField(ctx context.Context, field string, value interface{}) (*models.Merchant, error) {
	query := fmt.Sprintf(`SELECT %s FROM merchants WHERE %s = $1`, merchantColumns, field)

	var merchant models.Merchant
	if err := r.db.GetContext(ctx, &merchant, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("merchant %v", value)
		}
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	return &merchant, nil
}

// ListMerchants returns every merchant ordered by code
func (r *MerchantRepo) ListMerchants(ctx context.Context) ([]*models.Merchant, error) {
	query := `SELECT` + merchantColumns + ` FROM merchants ORDER BY code`

	merchants := []*models.Merchant{}
	if err := r.db.SelectContext(ctx, &merchants, query); err != nil {
		return nil, fmt.Errorf("failed to list merchants: %w", err)
	}
	return merchants, nil
}

// SetMerchantActive flips the active flag and records entry with the
// resulting merchant as snapshot. Setting the current value is a no-op that
// writes no audit entry.
func (r *MerchantRepo) SetMerchantActive(ctx context.Context, code string, active bool, entry *models.AuditEntry) (*models.Merchant, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE merchants SET is_active = $1, updated_at = $2
		WHERE code = $3 AND is_active <> $1
		RETURNING` + merchantColumns

	var merchant models.Merchant
	err = tx.QueryRowxContext(ctx, query, active, entry.OccurredAt, code).StructScan(&merchant)
	if errors.Is(err, sql.ErrNoRows) {
		current, err := r.GetMerchantByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		return current, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update merchant: %w", err)
	}

	entry.MerchantID = uuid.NullUUID{UUID: merchant.ID, Valid: true}
	if err := entry.SetSnapshot(merchant); err != nil {
		return nil, err
	}
	if err := audit.Append(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &merchant, nil
}

// AppendAudit records a standalone audit entry
func (r *MerchantRepo) AppendAudit(ctx context.Context, entry *models.AuditEntry) error {
	return audit.Append(ctx, r.db, entry)
}
