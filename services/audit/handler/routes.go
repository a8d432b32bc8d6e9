package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/chadpay/internal/pkg/middleware"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/services/audit"
	httpHandler "github.com/piresc/chadpay/services/audit/handler/http"
)

// Handler combines all handlers for the audit service
type Handler struct {
	auditHTTP *httpHandler.AuditHandler
	jwtConfig models.JWTConfig
}

// NewHandler creates a new combined handler
func NewHandler(auditUC audit.AuditUC, cfg *models.Config) *Handler {
	return &Handler{
		auditHTTP: httpHandler.NewAuditHandler(auditUC),
		jwtConfig: cfg.JWT,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/merchant/audit", h.auditHTTP.ListEntries,
		middleware.JWTAuthMiddleware(h.jwtConfig),
		middleware.RequireRoles(models.RoleMerchantAdmin, models.RoleMerchantOperator))
	e.GET("/admin/audit", h.auditHTTP.ListEntries,
		middleware.JWTAuthMiddleware(h.jwtConfig),
		middleware.RequireRoles(models.RolePlatformAdmin))
}
