package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/chadpay/internal/pkg/apperror"
	"github.com/piresc/chadpay/internal/pkg/logger"
	"github.com/piresc/chadpay/internal/pkg/middleware"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/internal/utils"
	"github.com/piresc/chadpay/services/audit"
)

// AuditHandler handles HTTP requests for the audit trail
type AuditHandler struct {
	auditUC audit.AuditUC
}

// NewAuditHandler creates a new audit HTTP handler
func NewAuditHandler(auditUC audit.AuditUC) *AuditHandler {
	return &AuditHandler{auditUC: auditUC}
}

// ListEntries handles GET /merchant/audit and /admin/audit.
// Query: merchant_id, reference, action, from, to (RFC 3339), after, limit.
func (h *AuditHandler) ListEntries(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	filter, err := parseFilter(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	entries, err := h.auditUC.List(c.Request().Context(), actor, filter)
	if err != nil {
		if apperror.HTTPStatus(err) >= http.StatusInternalServerError {
			logger.ErrorCtx(c.Request().Context(), "Failed to list audit entries", logger.Err(err))
		}
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Audit entries retrieved", entries)
}

func parseFilter(c echo.Context) (models.AuditFilter, error) {
	filter := models.AuditFilter{
		EntityRef: c.QueryParam("reference"),
		Action:    models.AuditAction(c.QueryParam("action")),
	}

	if v := c.QueryParam("merchant_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, apperror.InvalidInput("invalid merchant_id")
		}
		filter.MerchantID = id
	}
	for name, dst := range map[string]**time.Time{"from": &filter.From, "to": &filter.To} {
		v := c.QueryParam(name)
		if v == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, apperror.InvalidInput("invalid %s: expected RFC 3339 time", name)
		}
		*dst = &t
	}
	if v := c.QueryParam("after"); v != "" {
		seq, err := strconv.ParseInt(v, 10, 64)
		if err != nil || seq < 0 {
			return filter, apperror.InvalidInput("invalid after")
		}
		filter.AfterSeq = seq
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, apperror.InvalidInput("invalid limit")
		}
		filter.Limit = n
	}
	return filter, nil
}
