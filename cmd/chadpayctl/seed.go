package main

import (
	"context"
	"fmt"
	"io"

	"github.com/piresc/chadpay/internal/pkg/config"
	"github.com/piresc/chadpay/internal/pkg/database"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/piresc/chadpay/services/merchants"
	"github.com/piresc/chadpay/services/merchants/repository"
	"github.com/piresc/chadpay/services/merchants/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const demoPIN = "1234"

type demoMerchant struct {
	merchant models.CreateMerchantRequest
	owner    models.CreateMerchantUserRequest
}

func strPtr(s string) *string { return &s }
func amount(n int64) *int64   { return &n }

var demoMerchants = []demoMerchant{
	{
		merchant: models.CreateMerchantRequest{
			Code: "BUS003", Name: "Bus Ligne 3 - N'Djamena", Phone: "+23566112233",
			Category: models.MerchantCategoryBus, Location: strPtr("Terminus Moursal"),
			Description: strPtr("Bus jaune ligne 3"), DefaultAmount: amount(300),
		},
		owner: models.CreateMerchantUserRequest{Phone: "+23566112233", Name: "Amadou Bus", PIN: demoPIN, IsAdmin: true},
	},
	{
		merchant: models.CreateMerchantRequest{
			Code: "TAXI001", Name: "Taxi Jaune - Centre Ville", Phone: "+23566445566",
			Category: models.MerchantCategoryTaxi, Location: strPtr("Centre ville"),
			Description: strPtr("Taxi jaune disponible 24/7"),
		},
		owner: models.CreateMerchantUserRequest{Phone: "+23566445566", Name: "Moussa Taxi", PIN: demoPIN, IsAdmin: true},
	},
	{
		merchant: models.CreateMerchantRequest{
			Code: "MOTO001", Name: "Moto-Taxi - Farcha", Phone: "+23566778899",
			Category: models.MerchantCategoryMotoTaxi, Location: strPtr("Farcha"),
			Description: strPtr("Moto-taxi rapide et sécurisé"),
		},
		owner: models.CreateMerchantUserRequest{Phone: "+23566778899", Name: "Issa Moto", PIN: demoPIN, IsAdmin: true},
	},
	{
		merchant: models.CreateMerchantRequest{
			Code: "VEND001", Name: "Boutique Alimentation - Marché Central", Phone: "+23566001122",
			Category: models.MerchantCategoryVendor, Location: strPtr("Marché Central"),
			Description: strPtr("Vente de produits alimentaires"), DefaultAmount: amount(1000),
		},
		owner: models.CreateMerchantUserRequest{Phone: "+23566001122", Name: "Fatima Vendeuse", PIN: demoPIN, IsAdmin: true},
	},
	{
		merchant: models.CreateMerchantRequest{
			Code: "VEND002", Name: "Kiosque Jus de Fruit", Phone: "+23566334455",
			Category: models.MerchantCategoryVendor, Location: strPtr("Avenue Charles de Gaulle"),
			Description: strPtr("Jus frais naturels"), DefaultAmount: amount(500),
		},
		owner: models.CreateMerchantUserRequest{Phone: "+23566334455", Name: "Hassan Jus", PIN: demoPIN, IsAdmin: true},
	},
}

var demoSettings = []struct {
	key         string
	value       string
	description string
}{
	{"airtel_money_template", config.DefaultAirtelMoneyTemplate, "Airtel Money USSD template"},
	{"moov_cash_template", config.DefaultMoovCashTemplate, "Moov Cash USSD template"},
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create demo merchants, their owners and the default dial templates",
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

			merchantUC := usecase.NewMerchantUC(configs, repository.NewMerchantRepository(configs, postgresClient.GetDB(), nil))

			ctx, cancel := context.WithTimeout(cmd.Context(), viper.GetDuration("timeout"))
			defer cancel()
			return seed(ctx, merchantUC, cmd.OutOrStdout())
		},
	}
}

// seed populates an empty directory. A directory that already has merchants
// is left alone.
func seed(ctx context.Context, merchantUC merchants.MerchantUC, out io.Writer) error {
	existing, err := merchantUC.ListMerchants(ctx, cliActor)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		fmt.Fprintln(out, "Merchants already exist, skipping seed")
		return nil
	}

	for _, demo := range demoMerchants {
		merchant, err := merchantUC.CreateMerchant(ctx, cliActor, demo.merchant)
		if err != nil {
			return fmt.Errorf("failed to create merchant %s: %w", demo.merchant.Code, err)
		}
		if _, err := merchantUC.CreateUser(ctx, cliActor, merchant.ID, demo.owner); err != nil {
			return fmt.Errorf("failed to create owner of %s: %w", merchant.Code, err)
		}
		fmt.Fprintf(out, "Created %s (%s), login %s / PIN %s\n", merchant.Name, merchant.Code, demo.owner.Phone, demo.owner.PIN)
	}

	for _, s := range demoSettings {
		req := models.UpdateSettingRequest{Value: s.value, Description: s.description}
		if _, err := merchantUC.UpdateSetting(ctx, cliActor, s.key, req); err != nil {
			return fmt.Errorf("failed to store setting %s: %w", s.key, err)
		}
	}
	fmt.Fprintln(out, "Seed completed")
	return nil
}
