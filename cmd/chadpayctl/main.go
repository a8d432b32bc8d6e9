package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/piresc/chadpay/internal/pkg/config"
	"github.com/piresc/chadpay/internal/pkg/logger"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time
var Version = "dev"

// cliActor is the identity recorded in audit entries written by this tool
var cliActor = models.Actor{ID: "chadpayctl", Role: models.RolePlatformAdmin}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "chadpayctl",
		Short:         "Operate a ChadPay deployment",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
	}

	rootCmd.PersistentFlags().String("env-file", "config/chadpay.env", "Env file loaded when APP_ENV=local")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "Deadline for the whole command")

	viper.SetEnvPrefix("CHADPAYCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(expireCmd())
	rootCmd.AddCommand(auditCmd())
	rootCmd.AddCommand(hashPasswordCmd())

	return rootCmd
}

// loadConfig reads the service configuration and installs a logger for it
func loadConfig() (*models.Config, error) {
	configs := config.InitConfig(viper.GetString("env-file"))

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger.SetGlobalLogger(zapLogger)
	return configs, nil
}
