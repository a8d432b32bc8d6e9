package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/services/payments/mocks"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes_QRLinkReachesPaymentStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPaymentUC(ctrl)
	cfg := &models.Config{JWT: models.JWTConfig{Secret: "test-secret", Expiration: 60}}

	e := echo.New()
	NewHandler(mockUC, nil, cfg).RegisterRoutes(e)
	var merchantPageHits []string
	e.GET("/pay/:code", func(c echo.Context) error {
		merchantPageHits = append(merchantPageHits, c.Param("code"))
		return c.NoContent(http.StatusTeapot)
	})

	view := &models.PaymentStatusView{Reference: "REF12345", Status: models.TransactionStatusPending}
	mockUC.EXPECT().Status(gomock.Any(), "REF12345").Return(view, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pay/r/REF12345", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reference":"REF12345"`)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pay/BUS003", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, []string{"BUS003"}, merchantPageHits)
}
