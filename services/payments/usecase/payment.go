package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/chadpay/internal/pkg/apperror"
	"github.com/piresc/chadpay/internal/pkg/authz"
	"github.com/piresc/chadpay/internal/pkg/constants"
	"github.com/piresc/chadpay/internal/pkg/logger"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/internal/pkg/newrelic"
	"github.com/piresc/chadpay/internal/pkg/qrcode"
	"github.com/piresc/chadpay/internal/pkg/ussd"
	"github.com/piresc/chadpay/internal/utils"
)

const (
	defaultListLimit        = 50
	maxListLimit            = 200
	defaultReferenceRetries = 5
)

// CreateRequest opens a pending payment request for a merchant
func (uc *PaymentUC) CreateRequest(ctx context.Context, actor *models.Actor, req models.CreatePaymentRequest) (*models.Transaction, error) {
	defer newrelic.StartSegment(ctx, "payments.CreateRequest")()

	code, ok := utils.NormalizeMerchantCode(req.MerchantCode)
	if !ok {
		return nil, apperror.NotFound("merchant %q", req.MerchantCode)
	}

	merchant, err := uc.lookupMerchant(ctx, code)
	if err != nil {
		return nil, err
	}

	creator := models.PublicActor()
	if actor != nil {
		if err := uc.authorize(ctx, *actor, authz.ActionCreatePayment, merchant.ID, models.EntityMerchant, merchant.Code); err != nil {
			return nil, err
		}
		creator = *actor
	}

	amount, err := resolveAmount(req.Amount, merchant.DefaultAmount)
	if err != nil {
		return nil, err
	}

	var customerPhone *string
	if req.CustomerPhone != nil && strings.TrimSpace(*req.CustomerPhone) != "" {
		normalized, err := utils.NormalizeMSISDN(*req.CustomerPhone)
		if err != nil {
			return nil, apperror.InvalidInput("customer phone: %v", err)
		}
		customerPhone = &normalized
	}

	provider := strings.ToLower(strings.TrimSpace(req.Provider))
	if provider == "" {
		provider = uc.cfg.Payments.DefaultProvider
	}
	template, err := uc.dialTemplate(ctx, provider)
	if err != nil {
		return nil, err
	}

	attempts := uc.cfg.Payments.MaxReferenceAttempts
	if attempts <= 0 {
		attempts = defaultReferenceRetries
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		reference, err := uc.newReference()
		if err != nil {
			return nil, apperror.Storage("generate reference", err)
		}

		txn, err := uc.openTransaction(ctx, creator, merchant, reference, amount, customerPhone, provider, template)
		if errors.Is(err, apperror.ErrReferenceTaken) {
			logger.WarnCtx(ctx, "Reference collision, retrying",
				logger.String("reference", reference),
				logger.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return nil, err
		}

		logger.InfoCtx(ctx, "Payment request created",
			logger.String("reference", txn.Reference),
			logger.String("merchant_code", merchant.Code),
			logger.Int64("amount", txn.Amount),
			logger.String("actor_id", creator.ID))

		uc.publish(ctx, constants.SubjectPaymentCreated, txn, creator.ID)
		return txn, nil
	}

	return nil, fmt.Errorf("%w: no free reference after %d attempts", apperror.ErrReferenceExhausted, attempts)
}

// openTransaction renders the payable artifacts for one candidate reference
// and stores the pending transaction. It returns apperror.ErrReferenceTaken
// when the insert hits an existing reference. The QR image is written only
// once the row is committed.
func (uc *PaymentUC) openTransaction(
	ctx context.Context,
	creator models.Actor,
	merchant *models.Merchant,
	reference string,
	amount int64,
	customerPhone *string,
	provider, template string,
) (*models.Transaction, error) {
	dialString, err := ussd.Render(template, merchant.Phone, amount, reference)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	txn := &models.Transaction{
		ID:            uuid.New(),
		Reference:     reference,
		MerchantID:    merchant.ID,
		Amount:        amount,
		CustomerPhone: customerPhone,
		Provider:      provider,
		DialString:    dialString,
		QRCodeHandle:  qrcode.HandleFor(reference),
		Status:        models.TransactionStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	entry := models.NewAuditEntry(creator, models.AuditActionTransactionCreated, models.EntityTransaction, reference, merchant.ID, now)
	if err := entry.SetSnapshot(txn); err != nil {
		return nil, err
	}

	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()
	if err := uc.paymentRepo.CreateTransaction(storeCtx, txn, entry); err != nil {
		if errors.Is(err, apperror.ErrReferenceTaken) {
			return nil, err
		}
		return nil, apperror.Storage("create transaction", err)
	}

	// The row is committed; a missing image only degrades the QR artifact and
	// the dial string stays usable.
	payload := qrcode.Payload(dialString, reference, uc.cfg.Payments.ConfirmationBaseURL)
	if _, err := uc.qrcodes.Generate(ctx, reference, payload); err != nil {
		logger.WarnCtx(ctx, "Failed to generate visual code",
			logger.String("reference", reference),
			logger.Err(err))
	}
	return txn, nil
}

// Confirm records that the merchant received the payment
func (uc *PaymentUC) Confirm(ctx context.Context, actor models.Actor, reference string) (*models.Transaction, error) {
	defer newrelic.StartSegment(ctx, "payments.Confirm")()
	return uc.resolve(ctx, actor, reference, models.TransactionStatusConfirmed, authz.ActionConfirmPayment)
}

// Reject records that the merchant did not receive the payment
func (uc *PaymentUC) Reject(ctx context.Context, actor models.Actor, reference string) (*models.Transaction, error) {
	defer newrelic.StartSegment(ctx, "payments.Reject")()
	return uc.resolve(ctx, actor, reference, models.TransactionStatusRejected, authz.ActionRejectPayment)
}

func (uc *PaymentUC) resolve(ctx context.Context, actor models.Actor, reference string, to models.TransactionStatus, action authz.Action) (*models.Transaction, error) {
	reference = normalizeReference(reference)

	current, err := uc.getTransaction(ctx, reference)
	if err != nil {
		return nil, err
	}

	// Gate before state: a foreign actor gets Forbidden even for resolved transactions
	if err := uc.authorize(ctx, actor, action, current.MerchantID, models.EntityTransaction, reference); err != nil {
		return nil, err
	}
	if err := uc.verifyMember(ctx, actor, action, current); err != nil {
		return nil, err
	}

	txn, err := uc.transition(ctx, actor, reference, to, uc.now())
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Payment request resolved",
		logger.String("reference", reference),
		logger.String("status", string(txn.Status)),
		logger.String("actor_id", actor.ID))

	uc.publish(ctx, subjectFor(to), txn, actor.ID)
	return txn, nil
}

// verifyMember checks the actor against the merchant directory. Token claims
// outlive deactivations and role changes, so they alone cannot attest a payment.
func (uc *PaymentUC) verifyMember(ctx context.Context, actor models.Actor, action authz.Action, txn *models.Transaction) error {
	target := authz.Target{MerchantID: txn.MerchantID, EntityType: models.EntityTransaction, EntityRef: txn.Reference}
	deny := func(format string, args ...interface{}) error {
		return authz.Deny(ctx, actor, action, target, uc.now(), apperror.Forbidden(format, args...), uc.appendAudit)
	}

	userID, err := uuid.Parse(actor.ID)
	if err != nil {
		return deny("actor %q is not a merchant user", actor.ID)
	}

	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()

	user, err := uc.merchants.GetUserByID(storeCtx, userID)
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return deny("merchant user %s is not registered", actor.ID)
	case err != nil:
		return apperror.Storage("get merchant user", err)
	case !user.IsActive:
		return deny("merchant user %s is deactivated", actor.ID)
	case user.MerchantID != txn.MerchantID:
		return deny("merchant user %s does not belong to merchant %s", actor.ID, txn.MerchantID)
	case user.Role() != actor.Role:
		return deny("merchant user %s no longer holds role %s", actor.ID, actor.Role)
	}

	merchant, err := uc.merchants.GetMerchantByID(storeCtx, txn.MerchantID)
	if err != nil {
		return apperror.Storage("get merchant", err)
	}
	if !merchant.IsActive {
		return deny("merchant %s is deactivated", merchant.Code)
	}
	return nil
}

// transition applies the guarded pending -> to change with its audit entry
func (uc *PaymentUC) transition(ctx context.Context, actor models.Actor, reference string, to models.TransactionStatus, at time.Time) (*models.Transaction, error) {
	from := models.TransactionStatusPending
	if !models.CanTransition(from, to) {
		return nil, fmt.Errorf("%w: %s -> %s", apperror.ErrInvalidState, from, to)
	}

	entry := models.NewAuditEntry(actor, models.TransitionAction(to), models.EntityTransaction, reference, uuid.Nil, at)

	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()

	txn, err := uc.paymentRepo.TransitionStatus(storeCtx, models.StatusTransition{
		Reference: reference,
		From:      from,
		To:        to,
		ActorID:   actor.ID,
		At:        at,
	}, entry)
	if err != nil {
		return nil, apperror.Storage("transition transaction", err)
	}
	return txn, nil
}

// Get returns a transaction the actor is allowed to read
func (uc *PaymentUC) Get(ctx context.Context, actor models.Actor, reference string) (*models.Transaction, error) {
	reference = normalizeReference(reference)

	txn, err := uc.getTransaction(ctx, reference)
	if err != nil {
		return nil, err
	}
	if err := uc.authorize(ctx, actor, authz.ActionReadPayment, txn.MerchantID, models.EntityTransaction, reference); err != nil {
		return nil, err
	}
	return txn, nil
}

// Status returns the public view of a request, as reached from its QR link
func (uc *PaymentUC) Status(ctx context.Context, reference string) (*models.PaymentStatusView, error) {
	reference = normalizeReference(reference)

	txn, err := uc.getTransaction(ctx, reference)
	if err != nil {
		return nil, err
	}

	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()
	merchant, err := uc.merchants.GetMerchantByID(storeCtx, txn.MerchantID)
	if err != nil {
		return nil, apperror.Storage("get merchant", err)
	}

	view := models.NewPaymentStatusView(txn, merchant)
	return &view, nil
}

// List returns recent transactions. Merchant users only ever see their own merchant.
func (uc *PaymentUC) List(ctx context.Context, actor models.Actor, filter models.TransactionFilter) ([]*models.Transaction, error) {
	if actor.IsMerchantUser() {
		filter.MerchantID = actor.MerchantID
	}
	if err := uc.authorize(ctx, actor, authz.ActionReadPayment, filter.MerchantID, models.EntityMerchant, filter.MerchantID.String()); err != nil {
		return nil, err
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()

	txns, err := uc.paymentRepo.ListTransactions(storeCtx, filter)
	if err != nil {
		return nil, apperror.Storage("list transactions", err)
	}
	return txns, nil
}

func (uc *PaymentUC) lookupMerchant(ctx context.Context, code string) (*models.Merchant, error) {
	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()

	merchant, err := uc.merchants.GetMerchantByCode(storeCtx, code)
	if err != nil {
		return nil, apperror.Storage("get merchant", err)
	}
	if !merchant.IsActive {
		return nil, apperror.NotFound("merchant %s is deactivated", code)
	}
	return merchant, nil
}

func (uc *PaymentUC) getTransaction(ctx context.Context, reference string) (*models.Transaction, error) {
	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()

	txn, err := uc.paymentRepo.GetTransaction(storeCtx, reference)
	if err != nil {
		return nil, apperror.Storage("get transaction", err)
	}
	return txn, nil
}

// dialTemplate returns the stored template for provider, falling back to the
// configured default
func (uc *PaymentUC) dialTemplate(ctx context.Context, provider string) (string, error) {
	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()

	setting, err := uc.settings.GetSetting(storeCtx, ussd.TemplateKey(provider))
	switch {
	case err == nil:
		return setting.Value, nil
	case errors.Is(err, apperror.ErrNotFound):
	default:
		return "", apperror.Storage("get dial template", err)
	}

	if template := uc.cfg.Payments.Templates[provider]; template != "" {
		return template, nil
	}
	return "", apperror.Configuration("no dial template for provider %q", provider)
}

// authorize consults the gate and records denials in the audit trail. A
// failure to record the denial does not change the outcome.
func (uc *PaymentUC) authorize(ctx context.Context, actor models.Actor, action authz.Action, merchantID uuid.UUID, entityType, entityRef string) error {
	return authz.Check(ctx, actor, action, authz.Target{
		MerchantID: merchantID,
		EntityType: entityType,
		EntityRef:  entityRef,
	}, uc.now(), uc.appendAudit)
}

func (uc *PaymentUC) appendAudit(ctx context.Context, entry *models.AuditEntry) error {
	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()
	return uc.paymentRepo.AppendAudit(storeCtx, entry)
}

// publish emits a lifecycle event. Delivery is best effort: the transaction
// is already committed.
func (uc *PaymentUC) publish(ctx context.Context, subject string, txn *models.Transaction, actorID string) {
	if uc.paymentGW == nil {
		return
	}
	event := models.NewTransactionEvent(txn, actorID, uc.now())
	if err := uc.paymentGW.PublishTransactionEvent(ctx, subject, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish payment event",
			logger.String("subject", subject),
			logger.String("reference", txn.Reference),
			logger.Err(err))
	}
}

func (uc *PaymentUC) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, uc.cfg.Payments.StoreTimeout())
}

func resolveAmount(requested, fallback *int64) (int64, error) {
	if requested != nil {
		if *requested <= 0 {
			return 0, apperror.InvalidAmount("amount must be positive, got %d", *requested)
		}
		return *requested, nil
	}
	if fallback != nil && *fallback > 0 {
		return *fallback, nil
	}
	return 0, apperror.InvalidAmount("amount is required: merchant has no default amount")
}

func normalizeReference(reference string) string {
	return strings.ToUpper(strings.TrimSpace(reference))
}

func subjectFor(status models.TransactionStatus) string {
	switch status {
	case models.TransactionStatusConfirmed:
		return constants.SubjectPaymentConfirmed
	case models.TransactionStatusRejected:
		return constants.SubjectPaymentRejected
	case models.TransactionStatusExpired:
		return constants.SubjectPaymentExpired
	}
	return constants.SubjectPaymentCreated
}
