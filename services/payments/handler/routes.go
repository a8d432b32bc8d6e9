package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/chadpay/internal/pkg/middleware"
	"github.com/piresc/chadpay/internal/pkg/models"
	natspkg "github.com/piresc/chadpay/internal/pkg/nats"
	"github.com/piresc/chadpay/services/payments"
	httpHandler "github.com/piresc/chadpay/services/payments/handler/http"
	natsHandler "github.com/piresc/chadpay/services/payments/handler/nats"
)

// sweepTimeout bounds one whole ExpireStale run triggered over NATS
const sweepTimeout = 2 * time.Minute

// Handler combines all handlers for the payments service
type Handler struct {
	paymentHTTP *httpHandler.PaymentHandler
	sweepNATS   *natsHandler.SweepHandler
	jwtConfig   models.JWTConfig
}

// NewHandler creates a new combined handler
func NewHandler(
	paymentUC payments.PaymentUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		paymentHTTP: httpHandler.NewPaymentHandler(paymentUC, cfg.Payments.PublicBaseURL),
		sweepNATS:   natsHandler.NewSweepHandler(paymentUC, natsClient, sweepTimeout),
		jwtConfig:   cfg.JWT,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Anonymous customers open a request from the merchant's payment page.
	// Scanned QR links land on /pay/r/:reference, which echo matches ahead
	// of the merchant page at GET /pay/:code.
	e.POST("/pay/:code", h.paymentHTTP.CreatePublicPayment)
	e.GET("/pay/r/:reference", h.paymentHTTP.PaymentStatus)

	merchant := e.Group("/merchant/payments",
		middleware.JWTAuthMiddleware(h.jwtConfig),
		middleware.RequireRoles(models.RoleMerchantAdmin, models.RoleMerchantOperator))
	merchant.POST("", h.paymentHTTP.CreatePayment)
	merchant.GET("", h.paymentHTTP.ListPayments)
	merchant.GET("/:reference", h.paymentHTTP.GetPayment)
	merchant.POST("/:reference/confirm", h.paymentHTTP.ConfirmPayment)
	merchant.POST("/:reference/reject", h.paymentHTTP.RejectPayment)

	admin := e.Group("/admin/payments",
		middleware.JWTAuthMiddleware(h.jwtConfig),
		middleware.RequireRoles(models.RolePlatformAdmin))
	admin.GET("", h.paymentHTTP.ListPayments)
	admin.GET("/:reference", h.paymentHTTP.GetPayment)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.sweepNATS.InitNATSConsumers()
}

// Close stops the NATS consumers
func (h *Handler) Close() {
	h.sweepNATS.Close()
}
