package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/chadpay/internal/pkg/database"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/services/audit"
	"github.com/piresc/chadpay/services/audit/repository"
	"github.com/piresc/chadpay/services/audit/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func auditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Print audit trail entries as JSON lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := auditFilterFromFlags()
			if err != nil {
				return err
			}

			configs, err := loadConfig()
			if err != nil {
				return err
			}

			postgresClient, err := database.NewPostgresClient(configs.Database)
			if err != nil {
				return err
			}
			defer postgresClient.Close()

			auditUC := usecase.NewAuditUC(configs, repository.NewAuditRepository(postgresClient.GetDB()))

			ctx, cancel := context.WithTimeout(cmd.Context(), viper.GetDuration("timeout"))
			defer cancel()
			return printAudit(ctx, auditUC, filter, cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("merchant", "", "Only entries for this merchant ID")
	cmd.Flags().String("reference", "", "Only entries for this entity reference")
	cmd.Flags().String("action", "", "Only entries with this action")
	cmd.Flags().Duration("since", 0, "Only entries newer than this, e.g. 24h")
	cmd.Flags().Int64("after", 0, "Only entries after this sequence number")
	cmd.Flags().Int("limit", 100, "Maximum entries to print")

	return cmd
}

func auditFilterFromFlags() (models.AuditFilter, error) {
	filter := models.AuditFilter{
		EntityRef: viper.GetString("reference"),
		Action:    models.AuditAction(viper.GetString("action")),
		AfterSeq:  viper.GetInt64("after"),
		Limit:     viper.GetInt("limit"),
	}
	if merchant := viper.GetString("merchant"); merchant != "" {
		id, err := uuid.Parse(merchant)
		if err != nil {
			return filter, fmt.Errorf("invalid --merchant: %w", err)
		}
		filter.MerchantID = id
	}
	if since := viper.GetDuration("since"); since > 0 {
		from := time.Now().UTC().Add(-since)
		filter.From = &from
	}
	return filter, nil
}

func printAudit(ctx context.Context, auditUC audit.AuditUC, filter models.AuditFilter, out io.Writer) error {
	entries, err := auditUC.List(ctx, cliActor, filter)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	for _, entry := range entries {
		if err := enc.Encode(entry); err != nil {
			return fmt.Errorf("failed to encode audit entry: %w", err)
		}
	}
	return nil
}
