package usecase

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/piresc/chadpay/internal/pkg/apperror"
	"github.com/piresc/chadpay/internal/pkg/authz"
	"github.com/piresc/chadpay/internal/pkg/logger"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

var pinPattern = regexp.MustCompile(`^[0-9]{4,6}$`)

// CreateUser adds a user to a merchant
func (uc *MerchantUC) CreateUser(ctx context.Context, actor models.Actor, merchantID uuid.UUID, req models.CreateMerchantUserRequest) (*models.MerchantUser, error) {
	if err := uc.authorize(ctx, actor, authz.ActionManageUsers, merchantID, models.EntityMerchantUser, req.Phone); err != nil {
		return nil, err
	}

	phone, err := utils.NormalizeMSISDN(req.Phone)
	if err != nil {
		return nil, apperror.InvalidInput("%v", err)
	}
	name := utils.SanitizeString(req.Name)
	if name == "" {
		return nil, apperror.InvalidInput("user name is required")
	}
	if !pinPattern.MatchString(req.PIN) {
		return nil, apperror.InvalidInput("PIN must be 4 to 6 digits")
	}

	if _, err := uc.getMerchantByID(ctx, merchantID); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), uc.pinCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash PIN: %w", err)
	}

	now := uc.now()
	user := &models.MerchantUser{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Phone:      phone,
		Name:       name,
		PINHash:    string(hash),
		IsAdmin:    req.IsAdmin,
		IsActive:   true,
		CreatedAt:  now,
	}
	entry := models.NewAuditEntry(actor, models.AuditActionUserCreated, models.EntityMerchantUser, user.ID.String(), merchantID, now)

	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()
	if err := uc.merchantRepo.CreateUser(storeCtx, user, entry); err != nil {
		return nil, apperror.Storage("create merchant user", err)
	}

	logger.InfoCtx(ctx, "Merchant user created",
		logger.String("merchant_id", merchantID.String()),
		logger.String("user_id", user.ID.String()),
		logger.Bool("is_admin", user.IsAdmin))
	return user, nil
}

// ListUsers returns the users of a merchant
func (uc *MerchantUC) ListUsers(ctx context.Context, actor models.Actor, merchantID uuid.UUID) ([]*models.MerchantUser, error) {
	if err := uc.authorize(ctx, actor, authz.ActionReadUsers, merchantID, models.EntityMerchantUser, "*"); err != nil {
		return nil, err
	}

	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()
	users, err := uc.merchantRepo.ListUsers(storeCtx, merchantID)
	if err != nil {
		return nil, apperror.Storage("list merchant users", err)
	}
	return users, nil
}

// DeactivateUser revokes a merchant user's access. Users cannot deactivate
// themselves.
func (uc *MerchantUC) DeactivateUser(ctx context.Context, actor models.Actor, userID uuid.UUID) (*models.MerchantUser, error) {
	storeCtx, cancel := uc.storeContext(ctx)
	user, err := uc.merchantRepo.GetUserByID(storeCtx, userID)
	cancel()
	if err != nil {
		return nil, apperror.Storage("get merchant user", err)
	}

	if err := uc.authorize(ctx, actor, authz.ActionManageUsers, user.MerchantID, models.EntityMerchantUser, userID.String()); err != nil {
		return nil, err
	}
	if actor.ID == userID.String() {
		return nil, apperror.InvalidInput("users cannot deactivate themselves")
	}

	entry := models.NewAuditEntry(actor, models.AuditActionUserDeactivated, models.EntityMerchantUser, userID.String(), user.MerchantID, uc.now())

	storeCtx, cancel = uc.storeContext(ctx)
	defer cancel()
	user, err = uc.merchantRepo.DeactivateUser(storeCtx, userID, entry)
	if err != nil {
		return nil, apperror.Storage("deactivate merchant user", err)
	}

	logger.InfoCtx(ctx, "Merchant user deactivated",
		logger.String("user_id", userID.String()),
		logger.String("actor_id", actor.ID))
	return user, nil
}

func (uc *MerchantUC) getMerchantByID(ctx context.Context, id uuid.UUID) (*models.Merchant, error) {
	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()
	merchant, err := uc.merchantRepo.GetMerchantByID(storeCtx, id)
	if err != nil {
		return nil, apperror.Storage("get merchant", err)
	}
	return merchant, nil
}
