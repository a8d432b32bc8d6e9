package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/chadpay/internal/pkg/apperror"
	"github.com/piresc/chadpay/internal/pkg/logger"
	"github.com/piresc/chadpay/internal/pkg/middleware"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/internal/utils"
	"github.com/piresc/chadpay/services/merchants"
)

// MerchantHandler handles HTTP requests for merchants, their users,
// settings and logins
type MerchantHandler struct {
	merchantUC merchants.MerchantUC
}

// NewMerchantHandler creates a new merchant HTTP handler
func NewMerchantHandler(merchantUC merchants.MerchantUC) *MerchantHandler {
	return &MerchantHandler{merchantUC: merchantUC}
}

// PublicProfile handles GET /pay/:code
func (h *MerchantHandler) PublicProfile(c echo.Context) error {
	profile, err := h.merchantUC.PublicProfile(c.Request().Context(), c.Param("code"))
	if err != nil {
		return fail(c, "load payment page", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Merchant retrieved", profile)
}

// Login handles POST /auth/merchant/login
func (h *MerchantHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	resp, err := h.merchantUC.Login(c.Request().Context(), req)
	if err != nil {
		return fail(c, "log in merchant user", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// AdminLogin handles POST /auth/admin/login
func (h *MerchantHandler) AdminLogin(c echo.Context) error {
	var req models.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	resp, err := h.merchantUC.AdminLogin(c.Request().Context(), req)
	if err != nil {
		return fail(c, "log in admin", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// ListMerchants handles GET /admin/merchants
func (h *MerchantHandler) ListMerchants(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.merchantUC.ListMerchants(c.Request().Context(), actor)
	if err != nil {
		return fail(c, "list merchants", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Merchants retrieved", list)
}

// CreateMerchant handles POST /admin/merchants
func (h *MerchantHandler) CreateMerchant(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateMerchantRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	merchant, err := h.merchantUC.CreateMerchant(c.Request().Context(), actor, req)
	if err != nil {
		return fail(c, "create merchant", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Merchant created", merchant)
}

// GetMerchant handles GET /admin/merchants/:code
func (h *MerchantHandler) GetMerchant(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	merchant, err := h.merchantUC.GetMerchant(c.Request().Context(), actor, c.Param("code"))
	if err != nil {
		return fail(c, "get merchant", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Merchant retrieved", merchant)
}

// DeactivateMerchant handles POST /admin/merchants/:code/deactivate
func (h *MerchantHandler) DeactivateMerchant(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	merchant, err := h.merchantUC.DeactivateMerchant(c.Request().Context(), actor, c.Param("code"))
	if err != nil {
		return fail(c, "deactivate merchant", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Merchant deactivated", merchant)
}

// ActivateMerchant handles POST /admin/merchants/:code/activate
func (h *MerchantHandler) ActivateMerchant(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	merchant, err := h.merchantUC.ActivateMerchant(c.Request().Context(), actor, c.Param("code"))
	if err != nil {
		return fail(c, "activate merchant", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Merchant activated", merchant)
}

// CreateMerchantUser handles POST /admin/merchants/:code/users
func (h *MerchantHandler) CreateMerchantUser(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateMerchantUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	ctx := c.Request().Context()
	merchant, err := h.merchantUC.GetMerchant(ctx, actor, c.Param("code"))
	if err != nil {
		return fail(c, "get merchant", err)
	}

	user, err := h.merchantUC.CreateUser(ctx, actor, merchant.ID, req)
	if err != nil {
		return fail(c, "create merchant user", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Merchant user created", user)
}

// ListUsers handles GET /merchant/users
func (h *MerchantHandler) ListUsers(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	users, err := h.merchantUC.ListUsers(c.Request().Context(), actor, actor.MerchantID)
	if err != nil {
		return fail(c, "list merchant users", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Merchant users retrieved", users)
}

// CreateUser handles POST /merchant/users
func (h *MerchantHandler) CreateUser(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateMerchantUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	user, err := h.merchantUC.CreateUser(c.Request().Context(), actor, actor.MerchantID, req)
	if err != nil {
		return fail(c, "create merchant user", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Merchant user created", user)
}

// DeactivateUser handles POST /merchant/users/:id/deactivate
func (h *MerchantHandler) DeactivateUser(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.merchantUC.DeactivateUser(c.Request().Context(), actor, userID)
	if err != nil {
		return fail(c, "deactivate merchant user", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Merchant user deactivated", user)
}

// ListSettings handles GET /admin/settings
func (h *MerchantHandler) ListSettings(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	settings, err := h.merchantUC.ListSettings(c.Request().Context(), actor)
	if err != nil {
		return fail(c, "list settings", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Settings retrieved", settings)
}

// UpdateSetting handles PUT /admin/settings/:key
func (h *MerchantHandler) UpdateSetting(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateSettingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	setting, err := h.merchantUC.UpdateSetting(c.Request().Context(), actor, c.Param("key"), req)
	if err != nil {
		return fail(c, "update setting", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Setting updated", setting)
}

func fail(c echo.Context, op string, err error) error {
	if status := apperror.HTTPStatus(err); status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), "Failed to "+op, logger.Err(err))
	}
	return utils.AppErrorResponse(c, err)
}
