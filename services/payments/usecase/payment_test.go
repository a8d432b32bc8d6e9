package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/chadpay/internal/pkg/apperror"
	"github.com/piresc/chadpay/internal/pkg/constants"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/services/payments/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func testConfig() *models.Config {
	return &models.Config{
		Payments: models.PaymentsConfig{
			RequestTTLMinutes:    15,
			ReferenceLength:      8,
			MaxReferenceAttempts: 3,
			StoreTimeoutSeconds:  5,
			ExpireBatchSize:      2,
			DefaultProvider:      "airtel_money",
			Templates: map[string]string{
				"airtel_money": "*211*{phone}*{amount}#",
				"moov_cash":    "*155*1*{phone}*{amount}#",
			},
		},
	}
}

type fixture struct {
	repo      *mocks.MockPaymentRepo
	gw        *mocks.MockPaymentGW
	merchants *mocks.MockMerchantDirectory
	settings  *mocks.MockSettingsProvider
	qrcodes   *mocks.MockVisualCodeGenerator
	uc        *PaymentUC
}

func newFixture(t *testing.T, cfg *models.Config) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		repo:      mocks.NewMockPaymentRepo(ctrl),
		gw:        mocks.NewMockPaymentGW(ctrl),
		merchants: mocks.NewMockMerchantDirectory(ctrl),
		settings:  mocks.NewMockSettingsProvider(ctrl),
		qrcodes:   mocks.NewMockVisualCodeGenerator(ctrl),
	}
	f.uc = NewPaymentUC(cfg, f.repo, f.gw, f.merchants, f.settings, f.qrcodes).
		WithClock(func() time.Time { return fixedNow })
	return f
}

// references makes the generator hand out refs in order
func (f *fixture) references(refs ...string) {
	i := 0
	f.uc.newReference = func() (string, error) {
		ref := refs[i%len(refs)]
		i++
		return ref, nil
	}
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func busMerchant() *models.Merchant {
	return &models.Merchant{
		ID:            uuid.New(),
		Code:          "BUS003",
		Name:          "Ligne 3 Chagoua",
		Phone:         "66112233",
		Category:      models.MerchantCategoryBus,
		DefaultAmount: int64Ptr(300),
		IsActive:      true,
	}
}

func pendingTransaction(merchantID uuid.UUID, reference string) *models.Transaction {
	return &models.Transaction{
		ID:         uuid.New(),
		Reference:  reference,
		MerchantID: merchantID,
		Amount:     300,
		Provider:   "airtel_money",
		DialString: "*211*66112233*300#",
		Status:     models.TransactionStatusPending,
		CreatedAt:  fixedNow,
		UpdatedAt:  fixedNow,
	}
}

func merchantUser(merchantID uuid.UUID, role models.Role) models.Actor {
	return models.Actor{ID: uuid.New().String(), MerchantID: merchantID, Role: role}
}

func platformAdmin() models.Actor {
	return models.Actor{ID: "admin", Role: models.RolePlatformAdmin}
}

func (f *fixture) expectTemplateFallback(provider string) {
	f.settings.EXPECT().
		GetSetting(gomock.Any(), provider+"_template").
		Return(nil, apperror.NotFound("setting %s", provider+"_template"))
}

// expectMember makes the directory vouch for actor as an active user of merchantID
func (f *fixture) expectMember(actor models.Actor, merchantID uuid.UUID) {
	userID := uuid.MustParse(actor.ID)
	f.merchants.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.MerchantUser{
			ID:         userID,
			MerchantID: merchantID,
			IsAdmin:    actor.Role == models.RoleMerchantAdmin,
			IsActive:   true,
		}, nil)
	f.merchants.EXPECT().
		GetMerchantByID(gomock.Any(), merchantID).
		Return(&models.Merchant{ID: merchantID, Code: "BUS003", IsActive: true}, nil)
}

func TestCreateRequest_UsesMerchantDefaultAmount(t *testing.T) {
	f := newFixture(t, testConfig())
	merchant := busMerchant()
	f.references("BUSREF23")

	f.merchants.EXPECT().GetMerchantByCode(gomock.Any(), "BUS003").Return(merchant, nil)
	f.expectTemplateFallback("airtel_money")
	f.qrcodes.EXPECT().
		Generate(gomock.Any(), "BUSREF23", "tel:*211*66112233*300%23").
		Return("qr_codes/BUSREF23.png", nil)
	f.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction, entry *models.AuditEntry) error {
			assert.Equal(t, models.TransactionStatusPending, txn.Status)
			assert.Equal(t, models.AuditActionTransactionCreated, entry.Action)
			assert.Equal(t, models.PublicActorID, entry.ActorID)
			assert.Equal(t, "BUSREF23", entry.EntityRef)
			assert.Equal(t, merchant.ID, entry.MerchantID.UUID)
			assert.NotEmpty(t, entry.Snapshot)
			return nil
		})
	f.gw.EXPECT().
		PublishTransactionEvent(gomock.Any(), constants.SubjectPaymentCreated, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, event models.TransactionEvent) error {
			assert.Equal(t, "BUSREF23", event.Reference)
			assert.Equal(t, int64(300), event.Amount)
			return nil
		})

	txn, err := f.uc.CreateRequest(context.Background(), nil, models.CreatePaymentRequest{MerchantCode: "bus003"})

	require.NoError(t, err)
	assert.Equal(t, int64(300), txn.Amount)
	assert.Equal(t, models.TransactionStatusPending, txn.Status)
	assert.Equal(t, merchant.ID, txn.MerchantID)
	assert.Contains(t, txn.DialString, "66112233")
	assert.Contains(t, txn.DialString, "300")
	assert.Equal(t, "qr_codes/BUSREF23.png", txn.QRCodeHandle)
	assert.Equal(t, fixedNow, txn.CreatedAt)
}

func TestCreateRequest_StoredTemplateAndCustomerPhone(t *testing.T) {
	f := newFixture(t, testConfig())
	merchant := busMerchant()
	actor := merchantUser(merchant.ID, models.RoleMerchantOperator)
	f.references("MOOV2345")

	f.merchants.EXPECT().GetMerchantByCode(gomock.Any(), "BUS003").Return(merchant, nil)
	f.settings.EXPECT().
		GetSetting(gomock.Any(), "moov_cash_template").
		Return(&models.Setting{Key: "moov_cash_template", Value: "*155*1*{phone}*{amount}*{reference}#"}, nil)
	f.qrcodes.EXPECT().Generate(gomock.Any(), "MOOV2345", gomock.Any()).Return("qr_codes/MOOV2345.png", nil)
	f.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction, entry *models.AuditEntry) error {
			assert.Equal(t, actor.ID, entry.ActorID)
			assert.Equal(t, models.RoleMerchantOperator, entry.ActorRole)
			return nil
		})
	f.gw.EXPECT().PublishTransactionEvent(gomock.Any(), constants.SubjectPaymentCreated, gomock.Any()).Return(nil)

	txn, err := f.uc.CreateRequest(context.Background(), &actor, models.CreatePaymentRequest{
		MerchantCode:  "BUS003",
		Amount:        int64Ptr(1500),
		CustomerPhone: strPtr("+235 99 12 34 56"),
		Provider:      "Moov_Cash",
	})

	require.NoError(t, err)
	assert.Equal(t, "*155*1*66112233*1500*MOOV2345#", txn.DialString)
	assert.Equal(t, "moov_cash", txn.Provider)
	require.NotNil(t, txn.CustomerPhone)
	assert.Equal(t, "99123456", *txn.CustomerPhone)
}

func TestCreateRequest_InvalidAmount(t *testing.T) {
	tests := []struct {
		name          string
		amount        *int64
		defaultAmount *int64
	}{
		{name: "zero amount", amount: int64Ptr(0), defaultAmount: int64Ptr(300)},
		{name: "negative amount", amount: int64Ptr(-50), defaultAmount: int64Ptr(300)},
		{name: "no amount and no default", amount: nil, defaultAmount: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, testConfig())
			merchant := busMerchant()
			merchant.DefaultAmount = tt.defaultAmount
			f.merchants.EXPECT().GetMerchantByCode(gomock.Any(), "BUS003").Return(merchant, nil)

			txn, err := f.uc.CreateRequest(context.Background(), nil, models.CreatePaymentRequest{
				MerchantCode: "BUS003",
				Amount:       tt.amount,
			})

			assert.Nil(t, txn)
			assert.ErrorIs(t, err, apperror.ErrInvalidAmount)
		})
	}
}

func TestCreateRequest_MerchantNotFound(t *testing.T) {
	t.Run("unknown code", func(t *testing.T) {
		f := newFixture(t, testConfig())
		f.merchants.EXPECT().
			GetMerchantByCode(gomock.Any(), "NOPE01").
			Return(nil, apperror.NotFound("merchant NOPE01"))

		_, err := f.uc.CreateRequest(context.Background(), nil, models.CreatePaymentRequest{MerchantCode: "NOPE01"})
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("deactivated merchant", func(t *testing.T) {
		f := newFixture(t, testConfig())
		merchant := busMerchant()
		merchant.IsActive = false
		f.merchants.EXPECT().GetMerchantByCode(gomock.Any(), "BUS003").Return(merchant, nil)

		_, err := f.uc.CreateRequest(context.Background(), nil, models.CreatePaymentRequest{MerchantCode: "BUS003"})
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("malformed code", func(t *testing.T) {
		f := newFixture(t, testConfig())

		_, err := f.uc.CreateRequest(context.Background(), nil, models.CreatePaymentRequest{MerchantCode: "b!"})
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestCreateRequest_InvalidCustomerPhone(t *testing.T) {
	f := newFixture(t, testConfig())
	f.merchants.EXPECT().GetMerchantByCode(gomock.Any(), "BUS003").Return(busMerchant(), nil)

	_, err := f.uc.CreateRequest(context.Background(), nil, models.CreatePaymentRequest{
		MerchantCode:  "BUS003",
		CustomerPhone: strPtr("12345"),
	})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestCreateRequest_ForbiddenForPlatformAdmin(t *testing.T) {
	f := newFixture(t, testConfig())
	merchant := busMerchant()
	admin := platformAdmin()

	f.merchants.EXPECT().GetMerchantByCode(gomock.Any(), "BUS003").Return(merchant, nil)
	f.repo.EXPECT().
		AppendAudit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.AuditEntry) error {
			assert.Equal(t, models.AuditActionAuthorizationDenied, entry.Action)
			assert.Equal(t, "admin", entry.ActorID)
			assert.Equal(t, models.EntityMerchant, entry.EntityType)
			return nil
		})

	_, err := f.uc.CreateRequest(context.Background(), &admin, models.CreatePaymentRequest{MerchantCode: "BUS003"})

	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestCreateRequest_UnknownProviderIsConfigurationError(t *testing.T) {
	f := newFixture(t, testConfig())
	f.merchants.EXPECT().GetMerchantByCode(gomock.Any(), "BUS003").Return(busMerchant(), nil)
	f.expectTemplateFallback("tigo_cash")

	_, err := f.uc.CreateRequest(context.Background(), nil, models.CreatePaymentRequest{
		MerchantCode: "BUS003",
		Provider:     "tigo_cash",
	})

	assert.ErrorIs(t, err, apperror.ErrConfiguration)
}

func TestCreateRequest_BrokenStoredTemplate(t *testing.T) {
	f := newFixture(t, testConfig())
	f.references("BROKEN23")
	f.merchants.EXPECT().GetMerchantByCode(gomock.Any(), "BUS003").Return(busMerchant(), nil)
	f.settings.EXPECT().
		GetSetting(gomock.Any(), "airtel_money_template").
		Return(&models.Setting{Value: "*211*{merchant}*{amount}#"}, nil)

	_, err := f.uc.CreateRequest(context.Background(), nil, models.CreatePaymentRequest{MerchantCode: "BUS003"})

	assert.ErrorIs(t, err, apperror.ErrConfiguration)
}

func TestCreateRequest_RetriesOnReferenceCollision(t *testing.T) {
	f := newFixture(t, testConfig())
	merchant := busMerchant()
	f.references("TAKEN234", "RACED234", "FREE2345")

	f.merchants.EXPECT().GetMerchantByCode(gomock.Any(), "BUS003").Return(merchant, nil)
	f.expectTemplateFallback("airtel_money")

	var attempted []string
	f.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction, _ *models.AuditEntry) error {
			attempted = append(attempted, txn.Reference)
			if txn.Reference == "FREE2345" {
				return nil
			}
			return fmt.Errorf("%w: %s", apperror.ErrReferenceTaken, txn.Reference)
		}).
		Times(3)
	// only the committed reference gets an image
	f.qrcodes.EXPECT().Generate(gomock.Any(), "FREE2345", gomock.Any()).Return("qr_codes/FREE2345.png", nil)
	f.gw.EXPECT().PublishTransactionEvent(gomock.Any(), constants.SubjectPaymentCreated, gomock.Any()).Return(nil)

	txn, err := f.uc.CreateRequest(context.Background(), nil, models.CreatePaymentRequest{MerchantCode: "BUS003"})

	require.NoError(t, err)
	assert.Equal(t, "FREE2345", txn.Reference)
	assert.Equal(t, "qr_codes/FREE2345.png", txn.QRCodeHandle)
	assert.Equal(t, []string{"TAKEN234", "RACED234", "FREE2345"}, attempted)
}

func TestCreateRequest_ReferenceExhausted(t *testing.T) {
	f := newFixture(t, testConfig())
	merchant := busMerchant()
	f.references("SAME2345")

	f.merchants.EXPECT().GetMerchantByCode(gomock.Any(), "BUS003").Return(merchant, nil)
	f.expectTemplateFallback("airtel_money")
	f.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(apperror.ErrReferenceTaken).
		Times(3)

	txn, err := f.uc.CreateRequest(context.Background(), nil, models.CreatePaymentRequest{MerchantCode: "BUS003"})

	assert.Nil(t, txn)
	assert.ErrorIs(t, err, apperror.ErrReferenceExhausted)
}

func TestCreateRequest_VisualCodeWrittenAfterCommit(t *testing.T) {
	f := newFixture(t, testConfig())
	f.references("ORDER234")

	f.merchants.EXPECT().GetMerchantByCode(gomock.Any(), "BUS003").Return(busMerchant(), nil)
	f.expectTemplateFallback("airtel_money")
	gomock.InOrder(
		f.repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		f.qrcodes.EXPECT().Generate(gomock.Any(), "ORDER234", gomock.Any()).Return("qr_codes/ORDER234.png", nil),
	)
	f.gw.EXPECT().PublishTransactionEvent(gomock.Any(), constants.SubjectPaymentCreated, gomock.Any()).Return(nil)

	_, err := f.uc.CreateRequest(context.Background(), nil, models.CreatePaymentRequest{MerchantCode: "BUS003"})

	require.NoError(t, err)
}

func TestCreateRequest_VisualCodeFailureKeepsRequest(t *testing.T) {
	f := newFixture(t, testConfig())
	f.references("NOIMG234")

	f.merchants.EXPECT().GetMerchantByCode(gomock.Any(), "BUS003").Return(busMerchant(), nil)
	f.expectTemplateFallback("airtel_money")
	f.repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.qrcodes.EXPECT().
		Generate(gomock.Any(), "NOIMG234", gomock.Any()).
		Return("", errors.New("failed to create qr code directory: read-only file system"))
	f.gw.EXPECT().PublishTransactionEvent(gomock.Any(), constants.SubjectPaymentCreated, gomock.Any()).Return(nil)

	txn, err := f.uc.CreateRequest(context.Background(), nil, models.CreatePaymentRequest{MerchantCode: "BUS003"})

	require.NoError(t, err)
	assert.Equal(t, "qr_codes/NOIMG234.png", txn.QRCodeHandle)
	assert.Equal(t, "*211*66112233*300#", txn.DialString)
}

func TestCreateRequest_StorageFailure(t *testing.T) {
	f := newFixture(t, testConfig())
	f.references("FAIL2345")

	f.merchants.EXPECT().GetMerchantByCode(gomock.Any(), "BUS003").Return(busMerchant(), nil)
	f.expectTemplateFallback("airtel_money")
	f.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("failed to insert transaction: connection refused"))

	_, err := f.uc.CreateRequest(context.Background(), nil, models.CreatePaymentRequest{MerchantCode: "BUS003"})

	assert.ErrorIs(t, err, apperror.ErrStorageFailure)
}

func TestConfirm_Success(t *testing.T) {
	f := newFixture(t, testConfig())
	merchantID := uuid.New()
	actor := merchantUser(merchantID, models.RoleMerchantOperator)
	pending := pendingTransaction(merchantID, "REF12345")

	confirmed := *pending
	confirmed.Status = models.TransactionStatusConfirmed
	confirmed.ResolvedBy = &actor.ID

	f.repo.EXPECT().GetTransaction(gomock.Any(), "REF12345").Return(pending, nil)
	f.expectMember(actor, merchantID)
	f.repo.EXPECT().
		TransitionStatus(gomock.Any(), models.StatusTransition{
			Reference: "REF12345",
			From:      models.TransactionStatusPending,
			To:        models.TransactionStatusConfirmed,
			ActorID:   actor.ID,
			At:        fixedNow,
		}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.StatusTransition, entry *models.AuditEntry) (*models.Transaction, error) {
			assert.Equal(t, models.AuditActionTransactionConfirmed, entry.Action)
			assert.Equal(t, actor.ID, entry.ActorID)
			return &confirmed, nil
		})
	f.gw.EXPECT().PublishTransactionEvent(gomock.Any(), constants.SubjectPaymentConfirmed, gomock.Any()).Return(nil)

	txn, err := f.uc.Confirm(context.Background(), actor, " ref12345 ")

	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusConfirmed, txn.Status)
}

func TestReject_Success(t *testing.T) {
	f := newFixture(t, testConfig())
	merchantID := uuid.New()
	actor := merchantUser(merchantID, models.RoleMerchantAdmin)
	pending := pendingTransaction(merchantID, "REF12345")

	rejected := *pending
	rejected.Status = models.TransactionStatusRejected

	f.repo.EXPECT().GetTransaction(gomock.Any(), "REF12345").Return(pending, nil)
	f.expectMember(actor, merchantID)
	f.repo.EXPECT().
		TransitionStatus(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr models.StatusTransition, entry *models.AuditEntry) (*models.Transaction, error) {
			assert.Equal(t, models.TransactionStatusRejected, tr.To)
			assert.Equal(t, models.AuditActionTransactionRejected, entry.Action)
			return &rejected, nil
		})
	f.gw.EXPECT().PublishTransactionEvent(gomock.Any(), constants.SubjectPaymentRejected, gomock.Any()).Return(nil)

	txn, err := f.uc.Reject(context.Background(), actor, "REF12345")

	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusRejected, txn.Status)
}

func TestConfirm_ForeignMerchantForbiddenRegardlessOfState(t *testing.T) {
	for _, status := range []models.TransactionStatus{
		models.TransactionStatusPending,
		models.TransactionStatusConfirmed,
		models.TransactionStatusExpired,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(t, testConfig())
			txn := pendingTransaction(uuid.New(), "REF12345")
			txn.Status = status
			stranger := merchantUser(uuid.New(), models.RoleMerchantAdmin)

			f.repo.EXPECT().GetTransaction(gomock.Any(), "REF12345").Return(txn, nil)
			f.repo.EXPECT().
				AppendAudit(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, entry *models.AuditEntry) error {
					assert.Equal(t, models.AuditActionAuthorizationDenied, entry.Action)
					assert.Equal(t, "REF12345", entry.EntityRef)
					assert.Equal(t, stranger.ID, entry.ActorID)
					return nil
				})

			_, err := f.uc.Confirm(context.Background(), stranger, "REF12345")

			assert.ErrorIs(t, err, apperror.ErrForbidden)
		})
	}
}

func TestConfirm_DenialAuditFailureKeepsForbidden(t *testing.T) {
	f := newFixture(t, testConfig())
	txn := pendingTransaction(uuid.New(), "REF12345")

	f.repo.EXPECT().GetTransaction(gomock.Any(), "REF12345").Return(txn, nil)
	f.repo.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(errors.New("audit store down"))

	_, err := f.uc.Reject(context.Background(), platformAdmin(), "REF12345")

	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestConfirm_AlreadyResolved(t *testing.T) {
	f := newFixture(t, testConfig())
	merchantID := uuid.New()
	actor := merchantUser(merchantID, models.RoleMerchantOperator)

	f.repo.EXPECT().GetTransaction(gomock.Any(), "REF12345").Return(pendingTransaction(merchantID, "REF12345"), nil)
	f.expectMember(actor, merchantID)
	f.repo.EXPECT().
		TransitionStatus(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.Join(apperror.ErrInvalidState, errors.New("transaction REF12345 is confirmed")))

	_, err := f.uc.Confirm(context.Background(), actor, "REF12345")

	assert.ErrorIs(t, err, apperror.ErrInvalidState)
	assert.NotErrorIs(t, err, apperror.ErrStorageFailure)
}

func TestConfirm_NotFound(t *testing.T) {
	f := newFixture(t, testConfig())
	f.repo.EXPECT().GetTransaction(gomock.Any(), "MISSING2").Return(nil, apperror.NotFound("transaction MISSING2"))

	_, err := f.uc.Confirm(context.Background(), merchantUser(uuid.New(), models.RoleMerchantAdmin), "MISSING2")

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestConfirm_StorageFailure(t *testing.T) {
	f := newFixture(t, testConfig())
	merchantID := uuid.New()

	actor := merchantUser(merchantID, models.RoleMerchantAdmin)

	f.repo.EXPECT().GetTransaction(gomock.Any(), "REF12345").Return(pendingTransaction(merchantID, "REF12345"), nil)
	f.expectMember(actor, merchantID)
	f.repo.EXPECT().
		TransitionStatus(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("failed to commit transaction: broken pipe"))

	_, err := f.uc.Confirm(context.Background(), actor, "REF12345")

	assert.ErrorIs(t, err, apperror.ErrStorageFailure)
}

func TestConfirm_StoreDeadline(t *testing.T) {
	cfg := testConfig()
	cfg.Payments.StoreTimeoutSeconds = 1
	f := newFixture(t, cfg)
	merchantID := uuid.New()

	actor := merchantUser(merchantID, models.RoleMerchantAdmin)

	f.repo.EXPECT().GetTransaction(gomock.Any(), "REF12345").Return(pendingTransaction(merchantID, "REF12345"), nil)
	f.expectMember(actor, merchantID)
	f.repo.EXPECT().
		TransitionStatus(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.StatusTransition, _ *models.AuditEntry) (*models.Transaction, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	_, err := f.uc.Confirm(context.Background(), actor, "REF12345")

	assert.ErrorIs(t, err, apperror.ErrStorageFailure)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConfirm_PublishFailureDoesNotFail(t *testing.T) {
	f := newFixture(t, testConfig())
	merchantID := uuid.New()
	pending := pendingTransaction(merchantID, "REF12345")
	confirmed := *pending
	confirmed.Status = models.TransactionStatusConfirmed

	actor := merchantUser(merchantID, models.RoleMerchantOperator)

	f.repo.EXPECT().GetTransaction(gomock.Any(), "REF12345").Return(pending, nil)
	f.expectMember(actor, merchantID)
	f.repo.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(&confirmed, nil)
	f.gw.EXPECT().
		PublishTransactionEvent(gomock.Any(), constants.SubjectPaymentConfirmed, gomock.Any()).
		Return(errors.New("nats: connection closed"))

	txn, err := f.uc.Confirm(context.Background(), actor, "REF12345")

	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusConfirmed, txn.Status)
}

func TestConfirm_DirectoryMembership(t *testing.T) {
	merchantID := uuid.New()
	operator := merchantUser(merchantID, models.RoleMerchantOperator)
	owner := merchantUser(merchantID, models.RoleMerchantAdmin)

	tests := []struct {
		name     string
		actor    models.Actor
		user     *models.MerchantUser
		userErr  error
		merchant *models.Merchant
	}{
		{
			name:  "deactivated user",
			actor: operator,
			user:  &models.MerchantUser{ID: uuid.MustParse(operator.ID), MerchantID: merchantID, IsActive: false},
		},
		{
			name:    "unknown user",
			actor:   operator,
			userErr: apperror.NotFound("merchant user %s", operator.ID),
		},
		{
			name:  "owner flag revoked",
			actor: owner,
			user:  &models.MerchantUser{ID: uuid.MustParse(owner.ID), MerchantID: merchantID, IsAdmin: false, IsActive: true},
		},
		{
			name:  "moved to another merchant",
			actor: operator,
			user:  &models.MerchantUser{ID: uuid.MustParse(operator.ID), MerchantID: uuid.New(), IsActive: true},
		},
		{
			name:     "merchant deactivated",
			actor:    operator,
			user:     &models.MerchantUser{ID: uuid.MustParse(operator.ID), MerchantID: merchantID, IsActive: true},
			merchant: &models.Merchant{ID: merchantID, Code: "BUS003", IsActive: false},
		},
		{
			name:  "actor id is not a user id",
			actor: models.Actor{ID: "deactivated-or-unknown-user", MerchantID: merchantID, Role: models.RoleMerchantOperator},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, testConfig())
			f.repo.EXPECT().GetTransaction(gomock.Any(), "REF12345").Return(pendingTransaction(merchantID, "REF12345"), nil)
			if id, err := uuid.Parse(tt.actor.ID); err == nil {
				f.merchants.EXPECT().GetUserByID(gomock.Any(), id).Return(tt.user, tt.userErr)
			}
			if tt.merchant != nil {
				f.merchants.EXPECT().GetMerchantByID(gomock.Any(), merchantID).Return(tt.merchant, nil)
			}
			f.repo.EXPECT().
				AppendAudit(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, entry *models.AuditEntry) error {
					assert.Equal(t, models.AuditActionAuthorizationDenied, entry.Action)
					assert.Equal(t, tt.actor.ID, entry.ActorID)
					assert.Equal(t, "REF12345", entry.EntityRef)
					assert.Equal(t, merchantID, entry.MerchantID.UUID)
					return nil
				})

			txn, err := f.uc.Confirm(context.Background(), tt.actor, "REF12345")

			assert.Nil(t, txn)
			assert.ErrorIs(t, err, apperror.ErrForbidden)
		})
	}
}

func TestReject_DirectoryFailureIsStorageError(t *testing.T) {
	f := newFixture(t, testConfig())
	merchantID := uuid.New()
	actor := merchantUser(merchantID, models.RoleMerchantOperator)

	f.repo.EXPECT().GetTransaction(gomock.Any(), "REF12345").Return(pendingTransaction(merchantID, "REF12345"), nil)
	f.merchants.EXPECT().
		GetUserByID(gomock.Any(), uuid.MustParse(actor.ID)).
		Return(nil, errors.New("failed to get merchant user: connection refused"))

	_, err := f.uc.Reject(context.Background(), actor, "REF12345")

	assert.ErrorIs(t, err, apperror.ErrStorageFailure)
	assert.NotErrorIs(t, err, apperror.ErrForbidden)
}

func TestStatus_RedactedView(t *testing.T) {
	f := newFixture(t, testConfig())
	merchant := busMerchant()
	txn := pendingTransaction(merchant.ID, "REF12345")
	txn.CustomerPhone = strPtr("99123456")

	f.repo.EXPECT().GetTransaction(gomock.Any(), "REF12345").Return(txn, nil)
	f.merchants.EXPECT().GetMerchantByID(gomock.Any(), merchant.ID).Return(merchant, nil)

	view, err := f.uc.Status(context.Background(), " ref12345")

	require.NoError(t, err)
	assert.Equal(t, "REF12345", view.Reference)
	assert.Equal(t, "Ligne 3 Chagoua", view.MerchantName)
	assert.Equal(t, "BUS003", view.MerchantCode)
	assert.Equal(t, int64(300), view.Amount)
	assert.Equal(t, models.TransactionStatusPending, view.Status)
	assert.Equal(t, "*211*66112233*300#", view.DialString)
}

func TestStatus_NotFound(t *testing.T) {
	f := newFixture(t, testConfig())
	f.repo.EXPECT().GetTransaction(gomock.Any(), "MISSING2").Return(nil, apperror.NotFound("transaction MISSING2"))

	_, err := f.uc.Status(context.Background(), "MISSING2")

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGet(t *testing.T) {
	merchantID := uuid.New()

	tests := []struct {
		name    string
		actor   models.Actor
		wantErr error
		denial  bool
	}{
		{name: "own merchant operator", actor: merchantUser(merchantID, models.RoleMerchantOperator)},
		{name: "platform admin", actor: platformAdmin()},
		{name: "other merchant", actor: merchantUser(uuid.New(), models.RoleMerchantAdmin), wantErr: apperror.ErrForbidden, denial: true},
		{name: "system actor", actor: models.SystemActor(), wantErr: apperror.ErrForbidden, denial: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, testConfig())
			f.repo.EXPECT().GetTransaction(gomock.Any(), "REF12345").Return(pendingTransaction(merchantID, "REF12345"), nil)
			if tt.denial {
				f.repo.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(nil)
			}

			txn, err := f.uc.Get(context.Background(), tt.actor, "REF12345")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, txn)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "REF12345", txn.Reference)
		})
	}
}

func TestList_MerchantUserPinnedToOwnMerchant(t *testing.T) {
	f := newFixture(t, testConfig())
	merchantID := uuid.New()
	actor := merchantUser(merchantID, models.RoleMerchantOperator)

	f.repo.EXPECT().
		ListTransactions(gomock.Any(), models.TransactionFilter{
			MerchantID: merchantID,
			Status:     models.TransactionStatusPending,
			Limit:      defaultListLimit,
		}).
		Return([]*models.Transaction{pendingTransaction(merchantID, "REF12345")}, nil)

	txns, err := f.uc.List(context.Background(), actor, models.TransactionFilter{
		MerchantID: uuid.New(),
		Status:     models.TransactionStatusPending,
	})

	require.NoError(t, err)
	assert.Len(t, txns, 1)
}

func TestList_AdminLimitClamped(t *testing.T) {
	f := newFixture(t, testConfig())

	f.repo.EXPECT().
		ListTransactions(gomock.Any(), models.TransactionFilter{Limit: maxListLimit}).
		Return([]*models.Transaction{}, nil)

	_, err := f.uc.List(context.Background(), platformAdmin(), models.TransactionFilter{Limit: 10000})

	require.NoError(t, err)
}

func TestExpireStale_SkipsConcurrentlyResolved(t *testing.T) {
	f := newFixture(t, testConfig())
	now := fixedNow.Add(20 * time.Minute)
	cutoff := now.Add(-15 * time.Minute)
	merchantID := uuid.New()

	expired := pendingTransaction(merchantID, "AAAA2222")
	expired.Status = models.TransactionStatusExpired

	gomock.InOrder(
		f.repo.EXPECT().ListStalePending(gomock.Any(), cutoff, 2).Return([]string{"AAAA2222", "BBBB3333"}, nil),
		f.repo.EXPECT().ListStalePending(gomock.Any(), cutoff, 2).Return([]string{}, nil),
	)
	f.repo.EXPECT().
		TransitionStatus(gomock.Any(), models.StatusTransition{
			Reference: "AAAA2222",
			From:      models.TransactionStatusPending,
			To:        models.TransactionStatusExpired,
			ActorID:   models.SystemActorID,
			At:        now,
		}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.StatusTransition, entry *models.AuditEntry) (*models.Transaction, error) {
			assert.Equal(t, models.AuditActionTransactionExpired, entry.Action)
			assert.Equal(t, models.RoleSystem, entry.ActorRole)
			return expired, nil
		})
	f.repo.EXPECT().
		TransitionStatus(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.Join(apperror.ErrInvalidState, errors.New("transaction BBBB3333 is confirmed")))
	f.gw.EXPECT().PublishTransactionEvent(gomock.Any(), constants.SubjectPaymentExpired, gomock.Any()).Return(nil)

	count, err := f.uc.ExpireStale(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestExpireStale_StopsOnStorageFailure(t *testing.T) {
	f := newFixture(t, testConfig())
	now := fixedNow.Add(time.Hour)

	f.repo.EXPECT().ListStalePending(gomock.Any(), gomock.Any(), 2).Return([]string{"AAAA2222"}, nil)
	f.repo.EXPECT().
		TransitionStatus(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("failed to begin transaction: too many connections"))

	count, err := f.uc.ExpireStale(context.Background(), now)

	assert.Equal(t, 0, count)
	assert.ErrorIs(t, err, apperror.ErrStorageFailure)
}

func TestExpireStale_ListFailure(t *testing.T) {
	f := newFixture(t, testConfig())

	f.repo.EXPECT().ListStalePending(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := f.uc.ExpireStale(context.Background(), fixedNow)

	assert.ErrorIs(t, err, apperror.ErrStorageFailure)
}
