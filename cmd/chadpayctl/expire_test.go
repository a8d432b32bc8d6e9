package main

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/piresc/chadpay/internal/pkg/constants"
	"github.com/piresc/chadpay/internal/pkg/models"
	natspkg "github.com/piresc/chadpay/internal/pkg/nats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSweepResponder(t *testing.T, reply func(req models.SweepRequest) models.SweepResult) *natspkg.Client {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	srv := natsserver.RunServer(&opts)
	t.Cleanup(srv.Shutdown)

	client, err := natspkg.NewClient(srv.ClientURL(), "chadpayctl-test")
	require.NoError(t, err)
	t.Cleanup(client.Close)

	_, err = client.GetConn().Subscribe(constants.SubjectPaymentSweep, func(msg *nats.Msg) {
		var req models.SweepRequest
		_ = json.Unmarshal(msg.Data, &req)
		data, _ := json.Marshal(reply(req))
		_ = msg.Respond(data)
	})
	require.NoError(t, err)
	return client
}

func TestRequestSweep_ReturnsCount(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	client := newSweepResponder(t, func(req models.SweepRequest) models.SweepResult {
		if assert.NotNil(t, req.Now) {
			assert.True(t, at.Equal(*req.Now))
		}
		return models.SweepResult{Expired: 4}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	expired, err := requestSweep(ctx, client, &at)

	require.NoError(t, err)
	assert.Equal(t, 4, expired)
}

func TestRequestSweep_ServerClock(t *testing.T) {
	client := newSweepResponder(t, func(req models.SweepRequest) models.SweepResult {
		assert.Nil(t, req.Now)
		return models.SweepResult{}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	expired, err := requestSweep(ctx, client, nil)

	require.NoError(t, err)
	assert.Zero(t, expired)
}

func TestRequestSweep_RemoteFailure(t *testing.T) {
	client := newSweepResponder(t, func(models.SweepRequest) models.SweepResult {
		return models.SweepResult{Expired: 2, Error: "storage failure: list stale"}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	expired, err := requestSweep(ctx, client, nil)

	assert.EqualError(t, err, "storage failure: list stale")
	assert.Equal(t, 2, expired)
}
