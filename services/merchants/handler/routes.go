package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/chadpay/internal/pkg/database"
	"github.com/piresc/chadpay/internal/pkg/middleware"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/services/merchants"
	httpHandler "github.com/piresc/chadpay/services/merchants/handler/http"
)

// Handler combines all handlers for the merchants service
type Handler struct {
	merchantHTTP *httpHandler.MerchantHandler
	cfg          *models.Config
	redisClient  *database.RedisClient
}

// NewHandler creates a new combined handler. Without a Redis client the
// login endpoints are not rate limited.
func NewHandler(
	merchantUC merchants.MerchantUC,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		merchantHTTP: httpHandler.NewMerchantHandler(merchantUC),
		cfg:          cfg,
		redisClient:  redisClient,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/pay/:code", h.merchantHTTP.PublicProfile)

	var authMiddleware []echo.MiddlewareFunc
	if h.redisClient != nil {
		authMiddleware = append(authMiddleware, middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			Redis:    h.redisClient,
			Resource: "login",
			Limit:    h.cfg.Payments.LoginRateLimit,
			Period:   time.Duration(h.cfg.Payments.LoginRatePeriodSecs) * time.Second,
		}))
	}
	auth := e.Group("/auth", authMiddleware...)
	auth.POST("/merchant/login", h.merchantHTTP.Login)
	auth.POST("/admin/login", h.merchantHTTP.AdminLogin)

	merchant := e.Group("/merchant/users",
		middleware.JWTAuthMiddleware(h.cfg.JWT),
		middleware.RequireRoles(models.RoleMerchantAdmin, models.RoleMerchantOperator))
	merchant.GET("", h.merchantHTTP.ListUsers)
	merchant.POST("", h.merchantHTTP.CreateUser)
	merchant.POST("/:id/deactivate", h.merchantHTTP.DeactivateUser)

	admin := e.Group("/admin",
		middleware.JWTAuthMiddleware(h.cfg.JWT),
		middleware.RequireRoles(models.RolePlatformAdmin))
	admin.GET("/merchants", h.merchantHTTP.ListMerchants)
	admin.POST("/merchants", h.merchantHTTP.CreateMerchant)
	admin.GET("/merchants/:code", h.merchantHTTP.GetMerchant)
	admin.POST("/merchants/:code/deactivate", h.merchantHTTP.DeactivateMerchant)
	admin.POST("/merchants/:code/activate", h.merchantHTTP.ActivateMerchant)
	admin.POST("/merchants/:code/users", h.merchantHTTP.CreateMerchantUser)
	admin.GET("/settings", h.merchantHTTP.ListSettings)
	admin.PUT("/settings/:key", h.merchantHTTP.UpdateSetting)
}
