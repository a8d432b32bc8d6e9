package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/chadpay/internal/pkg/apperror"
	"github.com/piresc/chadpay/internal/pkg/audit"
	"github.com/piresc/chadpay/internal/pkg/constants"
	"github.com/piresc/chadpay/internal/pkg/database"
	"github.com/piresc/chadpay/internal/pkg/logger"
	"github.com/piresc/chadpay/internal/pkg/models"
)

const settingColumns = `key, value, description, updated_at, updated_by`

// GetSetting returns a setting, reading through the Redis cache when one is
// configured. Cache failures fall back to Postgres.
func (r *MerchantRepo) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	if setting, ok := r.cachedSetting(ctx, key); ok {
		return setting, nil
	}

	query := `SELECT ` + settingColumns + ` FROM settings WHERE key = $1`

	var setting models.Setting
	if err := r.db.GetContext(ctx, &setting, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("setting %s", key)
		}
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}

	r.cacheSetting(ctx, &setting)
	return &setting, nil
}

// ListSettings returns every setting ordered by key
func (r *MerchantRepo) ListSettings(ctx context.Context) ([]*models.Setting, error) {
	query := `SELECT ` + settingColumns + ` FROM settings ORDER BY key`

	settings := []*models.Setting{}
	if err := r.db.SelectContext(ctx, &settings, query); err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

// UpsertSetting writes a setting and its setting_updated audit entry, then
// drops the cached copy
func (r *MerchantRepo) UpsertSetting(ctx context.Context, setting *models.Setting, entry *models.AuditEntry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO settings (key, value, description, updated_at, updated_by)
		VALUES (:key, :value, :description, :updated_at, :updated_by)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by`
	if _, err := tx.NamedExecContext(ctx, query, setting); err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	if err := entry.SetSnapshot(setting); err != nil {
		return err
	}
	if err := audit.Append(ctx, tx, entry); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.evictSetting(ctx, setting.Key)
	return nil
}

func (r *MerchantRepo) settingsTTL() time.Duration {
	if r.redisClient == nil || r.cfg == nil || r.cfg.Payments.SettingsCacheSeconds <= 0 {
		return 0
	}
	return time.Duration(r.cfg.Payments.SettingsCacheSeconds) * time.Second
}

func (r *MerchantRepo) cachedSetting(ctx context.Context, key string) (*models.Setting, bool) {
	if r.settingsTTL() == 0 {
		return nil, false
	}

	raw, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeySetting, key))
	if err != nil {
		if !database.IsNil(err) {
			logger.WarnCtx(ctx, "Failed to read cached setting",
				logger.String("key", key),
				logger.Err(err))
		}
		return nil, false
	}

	var setting models.Setting
	if err := json.Unmarshal([]byte(raw), &setting); err != nil {
		logger.WarnCtx(ctx, "Discarding malformed cached setting",
			logger.String("key", key),
			logger.Err(err))
		return nil, false
	}
	return &setting, true
}

func (r *MerchantRepo) cacheSetting(ctx context.Context, setting *models.Setting) {
	ttl := r.settingsTTL()
	if ttl == 0 {
		return
	}

	data, err := json.Marshal(setting)
	if err != nil {
		return
	}
	if err := r.redisClient.Set(ctx, fmt.Sprintf(constants.KeySetting, setting.Key), data, ttl); err != nil {
		logger.WarnCtx(ctx, "Failed to cache setting",
			logger.String("key", setting.Key),
			logger.Err(err))
	}
}

func (r *MerchantRepo) evictSetting(ctx context.Context, key string) {
	if r.redisClient == nil {
		return
	}
	if err := r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeySetting, key)); err != nil {
		logger.WarnCtx(ctx, "Failed to evict cached setting",
			logger.String("key", key),
			logger.Err(err))
	}
}
