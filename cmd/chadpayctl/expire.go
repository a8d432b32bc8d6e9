package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/chadpay/internal/pkg/constants"
	"github.com/piresc/chadpay/internal/pkg/models"
	natspkg "github.com/piresc/chadpay/internal/pkg/nats"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func expireCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expire",
		Short: "Ask a running payments instance to expire stale pending requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			configs, err := loadConfig()
			if err != nil {
				return err
			}

			var now *time.Time
			if at := viper.GetString("at"); at != "" {
				t, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid --at: %w", err)
				}
				now = &t
			}

			natsClient, err := natspkg.NewClient(configs.NATS.URL, "chadpayctl")
			if err != nil {
				return err
			}
			defer natsClient.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), viper.GetDuration("timeout"))
			defer cancel()

			expired, err := requestSweep(ctx, natsClient, now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Expired %d payment requests\n", expired)
			return nil
		},
	}

	cmd.Flags().String("at", "", "Evaluate expiry as of this RFC 3339 time instead of the server clock")

	return cmd
}

// requestSweep triggers one expiry sweep and returns how many requests expired
func requestSweep(ctx context.Context, client *natspkg.Client, now *time.Time) (int, error) {
	data, err := json.Marshal(models.SweepRequest{Now: now})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal sweep request: %w", err)
	}

	msg, err := client.Request(ctx, constants.SubjectPaymentSweep, data)
	if err != nil {
		return 0, err
	}

	var result models.SweepResult
	if err := json.Unmarshal(msg.Data, &result); err != nil {
		return 0, fmt.Errorf("failed to decode sweep result: %w", err)
	}
	if result.Error != "" {
		return result.Expired, errors.New(result.Error)
	}
	return result.Expired, nil
}
