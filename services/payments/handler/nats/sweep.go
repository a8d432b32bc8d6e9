package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/piresc/chadpay/internal/pkg/constants"
	"github.com/piresc/chadpay/internal/pkg/logger"
	"github.com/piresc/chadpay/internal/pkg/models"
	natspkg "github.com/piresc/chadpay/internal/pkg/nats"
	"github.com/piresc/chadpay/services/payments"
)

// SweepHandler expires stale payment requests on demand
type SweepHandler struct {
	paymentUC  payments.PaymentUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
	timeout    time.Duration
}

// NewSweepHandler creates a new sweep NATS handler
func NewSweepHandler(paymentUC payments.PaymentUC, client *natspkg.Client, timeout time.Duration) *SweepHandler {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &SweepHandler{
		paymentUC:  paymentUC,
		natsClient: client,
		subs:       make([]*nats.Subscription, 0),
		timeout:    timeout,
	}
}

// InitNATSConsumers joins the sweep queue group
func (h *SweepHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectPaymentSweep, constants.QueuePaymentSweep, func(msg *nats.Msg) {
		result := h.handleSweep(msg.Data)
		if msg.Reply == "" {
			return
		}
		data, err := json.Marshal(result)
		if err != nil {
			logger.Error("Failed to marshal sweep result", logger.Err(err))
			return
		}
		if err := msg.Respond(data); err != nil {
			logger.Warn("Failed to reply to sweep request", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to sweep requests: %w", err)
	}
	h.subs = append(h.subs, sub)
	return nil
}

// Close unsubscribes from every subject
func (h *SweepHandler) Close() {
	for _, sub := range h.subs {
		_ = sub.Unsubscribe()
	}
	h.subs = h.subs[:0]
}

func (h *SweepHandler) handleSweep(data []byte) models.SweepResult {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	now := time.Now().UTC()
	if len(data) > 0 {
		var req models.SweepRequest
		if err := json.Unmarshal(data, &req); err != nil {
			logger.WarnCtx(ctx, "Failed to unmarshal sweep request", logger.Err(err))
			return models.SweepResult{Error: "invalid sweep request"}
		}
		if req.Now != nil {
			now = req.Now.UTC()
		}
	}

	expired, err := h.paymentUC.ExpireStale(ctx, now)
	if err != nil {
		logger.ErrorCtx(ctx, "Sweep failed",
			logger.Int("expired", expired),
			logger.Err(err))
		return models.SweepResult{Expired: expired, Error: err.Error()}
	}

	logger.InfoCtx(ctx, "Sweep completed", logger.Int("expired", expired))
	return models.SweepResult{Expired: expired}
}
