package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/chadpay/internal/pkg/apperror"
	"github.com/piresc/chadpay/internal/pkg/authz"
	"github.com/piresc/chadpay/internal/pkg/logger"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/internal/pkg/ussd"
)

const templateKeySuffix = "_template"

// ListSettings returns every platform setting
func (uc *MerchantUC) ListSettings(ctx context.Context, actor models.Actor) ([]*models.Setting, error) {
	if err := uc.authorize(ctx, actor, authz.ActionReadSettings, uuid.Nil, models.EntitySetting, "*"); err != nil {
		return nil, err
	}

	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()
	settings, err := uc.merchantRepo.ListSettings(storeCtx)
	if err != nil {
		return nil, apperror.Storage("list settings", err)
	}
	return settings, nil
}

// UpdateSetting creates or replaces a setting. Dial templates are validated
// before they are stored so CreateRequest never meets a broken one.
func (uc *MerchantUC) UpdateSetting(ctx context.Context, actor models.Actor, key string, req models.UpdateSettingRequest) (*models.Setting, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if err := uc.authorize(ctx, actor, authz.ActionManageSettings, uuid.Nil, models.EntitySetting, key); err != nil {
		return nil, err
	}
	if key == "" {
		return nil, apperror.InvalidInput("setting key is required")
	}

	value := strings.TrimSpace(req.Value)
	if value == "" {
		return nil, apperror.InvalidInput("setting value is required")
	}
	if strings.HasSuffix(key, templateKeySuffix) {
		if err := ussd.Validate(value); err != nil {
			return nil, apperror.InvalidInput("invalid dial template: %v", err)
		}
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		existing, err := uc.getSetting(ctx, key)
		switch {
		case err == nil:
			description = existing.Description
		case errors.Is(err, apperror.ErrNotFound):
		default:
			return nil, err
		}
	}

	now := uc.now()
	setting := &models.Setting{
		Key:         key,
		Value:       value,
		Description: description,
		UpdatedAt:   now,
		UpdatedBy:   actor.ID,
	}
	entry := models.NewAuditEntry(actor, models.AuditActionSettingUpdated, models.EntitySetting, key, uuid.Nil, now)

	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()
	if err := uc.merchantRepo.UpsertSetting(storeCtx, setting, entry); err != nil {
		return nil, apperror.Storage("update setting", err)
	}

	logger.InfoCtx(ctx, "Setting updated",
		logger.String("key", key),
		logger.String("actor_id", actor.ID))
	return setting, nil
}

// dialTemplate resolves a provider template from settings, falling back to
// the configured default
func (uc *MerchantUC) dialTemplate(ctx context.Context, provider string) (string, error) {
	setting, err := uc.getSetting(ctx, ussd.TemplateKey(provider))
	switch {
	case err == nil:
		return setting.Value, nil
	case errors.Is(err, apperror.ErrNotFound):
	default:
		return "", err
	}

	if template := uc.cfg.Payments.Templates[provider]; template != "" {
		return template, nil
	}
	return "", apperror.Configuration("no dial template for provider %q", provider)
}

func (uc *MerchantUC) getSetting(ctx context.Context, key string) (*models.Setting, error) {
	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()
	setting, err := uc.merchantRepo.GetSetting(storeCtx, key)
	if err != nil {
		return nil, apperror.Storage("get setting", err)
	}
	return setting, nil
}
