package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/piresc/chadpay/internal/pkg/apperror"
	"github.com/piresc/chadpay/internal/pkg/authz"
	"github.com/piresc/chadpay/internal/pkg/logger"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/internal/pkg/ussd"
	"github.com/piresc/chadpay/internal/utils"
)

// CreateMerchant registers a new active merchant
func (uc *MerchantUC) CreateMerchant(ctx context.Context, actor models.Actor, req models.CreateMerchantRequest) (*models.Merchant, error) {
	if err := uc.authorize(ctx, actor, authz.ActionManageMerchants, uuid.Nil, models.EntityMerchant, req.Code); err != nil {
		return nil, err
	}

	code, ok := utils.NormalizeMerchantCode(req.Code)
	if !ok {
		return nil, apperror.InvalidInput("merchant code must be 3 to 16 letters or digits")
	}
	name := utils.SanitizeString(req.Name)
	if name == "" {
		return nil, apperror.InvalidInput("merchant name is required")
	}
	phone, err := utils.NormalizeMSISDN(req.Phone)
	if err != nil {
		return nil, apperror.InvalidInput("%v", err)
	}
	if !req.Category.Valid() {
		return nil, apperror.InvalidInput("unknown merchant category %q", req.Category)
	}
	if req.DefaultAmount != nil && *req.DefaultAmount <= 0 {
		return nil, apperror.InvalidAmount("default amount must be positive, got %d", *req.DefaultAmount)
	}

	now := uc.now()
	merchant := &models.Merchant{
		ID:            uuid.New(),
		Code:          code,
		Name:          name,
		Phone:         phone,
		Category:      req.Category,
		Location:      sanitizeOptional(req.Location),
		Description:   sanitizeOptional(req.Description),
		DefaultAmount: req.DefaultAmount,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	entry := models.NewAuditEntry(actor, models.AuditActionMerchantCreated, models.EntityMerchant, code, merchant.ID, now)

	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()
	if err := uc.merchantRepo.CreateMerchant(storeCtx, merchant, entry); err != nil {
		return nil, apperror.Storage("create merchant", err)
	}

	logger.InfoCtx(ctx, "Merchant created",
		logger.String("merchant_code", code),
		logger.String("actor_id", actor.ID))
	return merchant, nil
}

// GetMerchant returns a merchant by code, active or not
func (uc *MerchantUC) GetMerchant(ctx context.Context, actor models.Actor, code string) (*models.Merchant, error) {
	if err := uc.authorize(ctx, actor, authz.ActionManageMerchants, uuid.Nil, models.EntityMerchant, code); err != nil {
		return nil, err
	}
	return uc.lookupMerchant(ctx, code)
}

// ListMerchants returns every merchant
func (uc *MerchantUC) ListMerchants(ctx context.Context, actor models.Actor) ([]*models.Merchant, error) {
	if err := uc.authorize(ctx, actor, authz.ActionManageMerchants, uuid.Nil, models.EntityMerchant, "*"); err != nil {
		return nil, err
	}

	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()
	list, err := uc.merchantRepo.ListMerchants(storeCtx)
	if err != nil {
		return nil, apperror.Storage("list merchants", err)
	}
	return list, nil
}

// DeactivateMerchant stops a merchant from receiving new payment requests
func (uc *MerchantUC) DeactivateMerchant(ctx context.Context, actor models.Actor, code string) (*models.Merchant, error) {
	return uc.setActive(ctx, actor, code, false)
}

// ActivateMerchant re-enables a deactivated merchant
func (uc *MerchantUC) ActivateMerchant(ctx context.Context, actor models.Actor, code string) (*models.Merchant, error) {
	return uc.setActive(ctx, actor, code, true)
}

func (uc *MerchantUC) setActive(ctx context.Context, actor models.Actor, code string, active bool) (*models.Merchant, error) {
	if err := uc.authorize(ctx, actor, authz.ActionManageMerchants, uuid.Nil, models.EntityMerchant, code); err != nil {
		return nil, err
	}

	normalized, ok := utils.NormalizeMerchantCode(code)
	if !ok {
		return nil, apperror.NotFound("merchant %s", code)
	}

	action := models.AuditActionMerchantDeactivated
	if active {
		action = models.AuditActionMerchantActivated
	}
	entry := models.NewAuditEntry(actor, action, models.EntityMerchant, normalized, uuid.Nil, uc.now())

	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()
	merchant, err := uc.merchantRepo.SetMerchantActive(storeCtx, normalized, active, entry)
	if err != nil {
		return nil, apperror.Storage("update merchant", err)
	}

	logger.InfoCtx(ctx, "Merchant status changed",
		logger.String("merchant_code", normalized),
		logger.Bool("is_active", merchant.IsActive),
		logger.String("actor_id", actor.ID))
	return merchant, nil
}

// PublicProfile returns what a customer sees on the payment page of an
// active merchant, with the dial templates of every configured provider
func (uc *MerchantUC) PublicProfile(ctx context.Context, code string) (*models.PublicMerchant, error) {
	merchant, err := uc.lookupMerchant(ctx, code)
	if err != nil {
		return nil, err
	}
	if !merchant.IsActive {
		return nil, apperror.NotFound("merchant %s", merchant.Code)
	}

	profile := &models.PublicMerchant{
		Code:          merchant.Code,
		Name:          merchant.Name,
		Category:      merchant.Category,
		Location:      merchant.Location,
		Description:   merchant.Description,
		DefaultAmount: merchant.DefaultAmount,
		Providers:     []string{},
		Templates:     map[string]string{},
	}
	for _, provider := range ussd.Providers {
		template, err := uc.dialTemplate(ctx, provider)
		if err != nil {
			if errors.Is(err, apperror.ErrConfiguration) {
				continue
			}
			return nil, err
		}
		profile.Providers = append(profile.Providers, provider)
		profile.Templates[provider] = template
	}
	return profile, nil
}

func (uc *MerchantUC) lookupMerchant(ctx context.Context, code string) (*models.Merchant, error) {
	normalized, ok := utils.NormalizeMerchantCode(code)
	if !ok {
		return nil, apperror.NotFound("merchant %s", code)
	}

	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()
	merchant, err := uc.merchantRepo.GetMerchantByCode(storeCtx, normalized)
	if err != nil {
		return nil, apperror.Storage("get merchant", err)
	}
	return merchant, nil
}

// authorize consults the gate and records denials in the audit trail
func (uc *MerchantUC) authorize(ctx context.Context, actor models.Actor, action authz.Action, merchantID uuid.UUID, entityType, entityRef string) error {
	return authz.Check(ctx, actor, action, authz.Target{
		MerchantID: merchantID,
		EntityType: entityType,
		EntityRef:  entityRef,
	}, uc.now(), uc.appendAudit)
}

func (uc *MerchantUC) appendAudit(ctx context.Context, entry *models.AuditEntry) error {
	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()
	return uc.merchantRepo.AppendAudit(storeCtx, entry)
}

func sanitizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := utils.SanitizeString(*s)
	if v == "" {
		return nil
	}
	return &v
}
