package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/chadpay/internal/pkg/logger"
	"github.com/piresc/chadpay/internal/pkg/models"
	natspkg "github.com/piresc/chadpay/internal/pkg/nats"
	"github.com/piresc/chadpay/internal/pkg/newrelic"
	"github.com/piresc/chadpay/services/payments"
)

// paymentGW publishes payment lifecycle events to NATS
type paymentGW struct {
	natsClient *natspkg.Client
}

// NewPaymentGW creates a new NATS gateway instance
func NewPaymentGW(client *natspkg.Client) payments.PaymentGW {
	return &paymentGW{
		natsClient: client,
	}
}

// PublishTransactionEvent publishes event on subject
func (g *paymentGW) PublishTransactionEvent(ctx context.Context, subject string, event models.TransactionEvent) error {
	defer newrelic.StartSegment(ctx, "nats.publish."+subject)()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction event: %w", err)
	}

	if err := g.natsClient.Publish(subject, data); err != nil {
		return err
	}

	logger.DebugCtx(ctx, "Published payment event",
		logger.String("subject", subject),
		logger.String("reference", event.Reference),
		logger.String("status", string(event.Status)))
	return nil
}
