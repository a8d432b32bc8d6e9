package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/chadpay/internal/pkg/apperror"
	"github.com/piresc/chadpay/internal/pkg/logger"
	"github.com/piresc/chadpay/internal/pkg/middleware"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/internal/utils"
	"github.com/piresc/chadpay/services/payments"
)

// PaymentHandler handles HTTP requests for payment requests
type PaymentHandler struct {
	paymentUC     payments.PaymentUC
	publicBaseURL string
}

// NewPaymentHandler creates a new payment HTTP handler
func NewPaymentHandler(paymentUC payments.PaymentUC, publicBaseURL string) *PaymentHandler {
	return &PaymentHandler{
		paymentUC:     paymentUC,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// createPaymentBody is the JSON body accepted by both create endpoints
type createPaymentBody struct {
	MerchantCode  string  `json:"merchant_code"`
	Amount        *int64  `json:"amount"`
	CustomerPhone *string `json:"customer_phone"`
	Provider      string  `json:"provider"`
}

// CreatePublicPayment handles POST /pay/:code for anonymous customers
func (h *PaymentHandler) CreatePublicPayment(c echo.Context) error {
	var body createPaymentBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	txn, err := h.paymentUC.CreateRequest(c.Request().Context(), nil, models.CreatePaymentRequest{
		MerchantCode:  c.Param("code"),
		Amount:        body.Amount,
		CustomerPhone: body.CustomerPhone,
		Provider:      body.Provider,
	})
	if err != nil {
		return h.fail(c, "create public payment", err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment request created", h.response(txn))
}

// CreatePayment handles POST /merchant/payments
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var body createPaymentBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if body.MerchantCode == "" {
		return utils.BadRequestResponse(c, "merchant_code is required")
	}

	txn, err := h.paymentUC.CreateRequest(c.Request().Context(), &actor, models.CreatePaymentRequest{
		MerchantCode:  body.MerchantCode,
		Amount:        body.Amount,
		CustomerPhone: body.CustomerPhone,
		Provider:      body.Provider,
	})
	if err != nil {
		return h.fail(c, "create payment", err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment request created", h.response(txn))
}

// GetPayment handles GET /merchant/payments/:reference and /admin/payments/:reference
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	txn, err := h.paymentUC.Get(c.Request().Context(), actor, c.Param("reference"))
	if err != nil {
		return h.fail(c, "get payment", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment request retrieved", h.response(txn))
}

// PaymentStatus handles GET /pay/r/:reference, the target of QR confirmation links
func (h *PaymentHandler) PaymentStatus(c echo.Context) error {
	view, err := h.paymentUC.Status(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return h.fail(c, "get payment status", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment status retrieved", view)
}

// ListPayments handles GET /merchant/payments?status=&limit=
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	filter := models.TransactionFilter{}
	if status := c.QueryParam("status"); status != "" {
		filter.Status = models.TransactionStatus(strings.ToLower(status))
		switch filter.Status {
		case models.TransactionStatusPending, models.TransactionStatusConfirmed,
			models.TransactionStatusRejected, models.TransactionStatusExpired:
		default:
			return utils.BadRequestResponse(c, "Unknown status filter")
		}
	}
	if merchantID := c.QueryParam("merchant_id"); merchantID != "" {
		id, err := uuid.Parse(merchantID)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid merchant_id")
		}
		filter.MerchantID = id
	}
	if limit := c.QueryParam("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			return utils.BadRequestResponse(c, "Invalid limit")
		}
		filter.Limit = n
	}

	txns, err := h.paymentUC.List(c.Request().Context(), actor, filter)
	if err != nil {
		return h.fail(c, "list payments", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment requests retrieved", txns)
}

// ConfirmPayment handles POST /merchant/payments/:reference/confirm
func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	txn, err := h.paymentUC.Confirm(c.Request().Context(), actor, c.Param("reference"))
	if err != nil {
		return h.fail(c, "confirm payment", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment confirmed", h.response(txn))
}

// RejectPayment handles POST /merchant/payments/:reference/reject
func (h *PaymentHandler) RejectPayment(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	txn, err := h.paymentUC.Reject(c.Request().Context(), actor, c.Param("reference"))
	if err != nil {
		return h.fail(c, "reject payment", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment rejected", h.response(txn))
}

func (h *PaymentHandler) response(txn *models.Transaction) models.PaymentResponse {
	return models.PaymentResponse{
		Transaction: txn,
		Artifacts:   txn.Artifacts(h.publicBaseURL),
	}
}

func (h *PaymentHandler) fail(c echo.Context, op string, err error) error {
	if status := apperror.HTTPStatus(err); status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), "Failed to "+op, logger.Err(err))
	}
	return utils.AppErrorResponse(c, err)
}
