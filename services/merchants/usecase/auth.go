package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/piresc/chadpay/internal/pkg/apperror"
	jwtpkg "github.com/piresc/chadpay/internal/pkg/jwt"
	"github.com/piresc/chadpay/internal/pkg/logger"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "invalid phone or PIN"

// Login authenticates a merchant user by phone and PIN and issues a token
// carrying the user's merchant and role
func (uc *MerchantUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	phone, err := utils.NormalizeMSISDN(req.Phone)
	if err != nil {
		return nil, apperror.Unauthorized(invalidCredentials)
	}

	storeCtx, cancel := uc.storeContext(ctx)
	user, err := uc.merchantRepo.GetUserByPhone(storeCtx, phone)
	cancel()
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized(invalidCredentials)
		}
		return nil, apperror.Storage("get merchant user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PINHash), []byte(req.PIN)); err != nil {
		logger.WarnCtx(ctx, "Rejected merchant login",
			logger.String("phone", utils.MaskPhoneNumber(phone)))
		return nil, apperror.Unauthorized(invalidCredentials)
	}
	if !user.IsActive {
		return nil, apperror.Unauthorized("user is deactivated")
	}

	merchant, err := uc.getMerchantByID(ctx, user.MerchantID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized("merchant is deactivated")
		}
		return nil, err
	}
	if !merchant.IsActive {
		return nil, apperror.Unauthorized("merchant is deactivated")
	}

	actor := models.Actor{
		ID:         user.ID.String(),
		MerchantID: user.MerchantID,
		Role:       user.Role(),
	}
	resp, err := uc.issueToken(actor)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Merchant user logged in",
		logger.String("user_id", actor.ID),
		logger.String("merchant_code", merchant.Code),
		logger.String("role", string(actor.Role)))
	return resp, nil
}

// AdminLogin authenticates the platform administrator against the configured
// bcrypt hash. An empty hash disables admin login.
func (uc *MerchantUC) AdminLogin(ctx context.Context, req models.AdminLoginRequest) (*models.AuthResponse, error) {
	hash := uc.cfg.Admin.PasswordHash
	if hash == "" {
		return nil, apperror.Unauthorized("admin login is disabled")
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(uc.cfg.Admin.Username)) == 1
	passwordOK := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) == nil
	if !usernameOK || !passwordOK {
		logger.WarnCtx(ctx, "Rejected admin login", logger.String("username", req.Username))
		return nil, apperror.Unauthorized("invalid username or password")
	}

	resp, err := uc.issueToken(models.Actor{ID: uc.cfg.Admin.Username, Role: models.RolePlatformAdmin})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Admin logged in", logger.String("username", req.Username))
	return resp, nil
}

func (uc *MerchantUC) issueToken(actor models.Actor) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(actor, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Actor:     actor,
	}, nil
}
