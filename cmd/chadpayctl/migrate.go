package main

import (
	"context"
	"fmt"

	"github.com/piresc/chadpay/internal/pkg/database"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			configs, err := loadConfig()
			if err != nil {
				return err
			}

			postgresClient, err := database.NewPostgresClient(configs.Database)
			if err != nil {
				return err
			}
			defer postgresClient.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), viper.GetDuration("timeout"))
			defer cancel()

			if err := database.Migrate(ctx, postgresClient.GetDB()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema applied")
			return nil
		},
	}
}
