package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/piresc/chadpay/internal/pkg/apperror"
	"github.com/piresc/chadpay/internal/pkg/constants"
	"github.com/piresc/chadpay/internal/pkg/logger"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/internal/pkg/newrelic"
)

const defaultExpireBatchSize = 500

// ExpireStale moves every pending transaction older than the request TTL to
// expired on behalf of the system actor and returns how many it expired.
// Rows resolved concurrently by a merchant are skipped.
func (uc *PaymentUC) ExpireStale(ctx context.Context, now time.Time) (int, error) {
	defer newrelic.StartSegment(ctx, "payments.ExpireStale")()

	cutoff := now.Add(-uc.cfg.Payments.RequestTTL())
	batchSize := uc.cfg.Payments.ExpireBatchSize
	if batchSize <= 0 {
		batchSize = defaultExpireBatchSize
	}

	system := models.SystemActor()
	expired := 0
	for {
		refs, err := uc.listStale(ctx, cutoff, batchSize)
		if err != nil {
			return expired, err
		}

		for _, ref := range refs {
			txn, err := uc.transition(ctx, system, ref, models.TransactionStatusExpired, now)
			switch {
			case err == nil:
				expired++
				uc.publish(ctx, constants.SubjectPaymentExpired, txn, system.ID)
			case errors.Is(err, apperror.ErrInvalidState), errors.Is(err, apperror.ErrNotFound):
				logger.DebugCtx(ctx, "Skipping transaction resolved during sweep", logger.String("reference", ref))
			default:
				return expired, err
			}
		}

		if len(refs) < batchSize {
			break
		}
	}

	if expired > 0 {
		logger.InfoCtx(ctx, "Expired stale payment requests",
			logger.Int("count", expired),
			logger.Time("cutoff", cutoff))
	}
	return expired, nil
}

func (uc *PaymentUC) listStale(ctx context.Context, cutoff time.Time, limit int) ([]string, error) {
	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()

	refs, err := uc.paymentRepo.ListStalePending(storeCtx, cutoff, limit)
	if err != nil {
		return nil, apperror.Storage("list stale transactions", err)
	}
	return refs, nil
}
