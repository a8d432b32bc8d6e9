package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/chadpay/internal/pkg/apperror"
	"github.com/piresc/chadpay/internal/pkg/audit"
	"github.com/piresc/chadpay/internal/pkg/database"
	"github.com/piresc/chadpay/internal/pkg/models"
)

const userColumns = `
	id, merchant_id, phone, name, pin_hash, is_admin, is_active, created_at`

// CreateUser inserts a merchant user and its audit entry
func (r *MerchantRepo) CreateUser(ctx context.Context, user *models.MerchantUser, entry *models.AuditEntry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO merchant_users (
			id, merchant_id, phone, name, pin_hash, is_admin, is_active, created_at
		) VALUES (
			:id, :merchant_id, :phone, :name, :pin_hash, :is_admin, :is_active, :created_at
		)`
	if _, err := tx.NamedExecContext(ctx, query, user); err != nil {
		if database.IsUniqueViolation(err) {
			return apperror.InvalidInput("phone %s is already registered", user.Phone)
		}
		return fmt.Errorf("failed to insert merchant user: %w", err)
	}

	if err := entry.SetSnapshot(user); err != nil {
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

// GetUserByID retrieves a merchant user by ID
func (r *MerchantRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.MerchantUser, error) {
	return r.getUserByField(ctx, "id", id)
}

// GetUserByPhone retrieves a merchant user by normalized phone
func (r *MerchantRepo) GetUserByPhone(ctx context.Context, phone string) (*models.MerchantUser, error) {
	return r.getUserByField(ctx, "phone", phone)
}

func (r *MerchantRepo) getUserByField(ctx context.Context, field string, value interface{}) (*models.MerchantUser, error) {
	query := fmt.Sprintf(`SELECT %s FROM merchant_users WHERE %s = $1`, userColumns, field)

	var user models.MerchantUser
	if err := r.db.GetContext(ctx, &user, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("merchant user %v", value)
		}
		return nil, fmt.Errorf("failed to get merchant user: %w", err)
	}
	return &user, nil
}

// ListUsers returns the users of one merchant, owners first
func (r *MerchantRepo) ListUsers(ctx context.Context, merchantID uuid.UUID) ([]*models.MerchantUser, error) {
	query := `SELECT` + userColumns + ` FROM merchant_users WHERE merchant_id = $1 ORDER BY is_admin DESC, created_at`

	users := []*models.MerchantUser{}
	if err := r.db.SelectContext(ctx, &users, query, merchantID); err != nil {
		return nil, fmt.Errorf("failed to list merchant users: %w", err)
	}
	return users, nil
}

// DeactivateUser disables a merchant user and records entry. Deactivating an
// inactive user returns it unchanged without an audit entry.
func (r *MerchantRepo) DeactivateUser(ctx context.Context, id uuid.UUID, entry *models.AuditEntry) (*models.MerchantUser, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE merchant_users SET is_active = FALSE
		WHERE id = $1 AND is_active
		RETURNING` + userColumns

	var user models.MerchantUser
	err = tx.QueryRowxContext(ctx, query, id).StructScan(&user)
	if errors.Is(err, sql.ErrNoRows) {
		return r.GetUserByID(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate merchant user: %w", err)
	}

	entry.MerchantID = uuid.NullUUID{UUID: user.MerchantID, Valid: true}
	if err := entry.SetSnapshot(user); err != nil {
		return nil, err
	}
	if err := audit.Append(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &user, nil
}
