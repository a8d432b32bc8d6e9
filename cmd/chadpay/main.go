package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/chadpay/internal/pkg/config"
	"github.com/piresc/chadpay/internal/pkg/database"
	"github.com/piresc/chadpay/internal/pkg/health"
	"github.com/piresc/chadpay/internal/pkg/logger"
	"github.com/piresc/chadpay/internal/pkg/middleware"
	natspkg "github.com/piresc/chadpay/internal/pkg/nats"
	nrpkg "github.com/piresc/chadpay/internal/pkg/newrelic"
	"github.com/piresc/chadpay/internal/pkg/qrcode"
	"github.com/piresc/chadpay/internal/pkg/retry"
	"github.com/piresc/chadpay/internal/pkg/server"
	auditHandler "github.com/piresc/chadpay/services/audit/handler"
	auditRepository "github.com/piresc/chadpay/services/audit/repository"
	auditUsecase "github.com/piresc/chadpay/services/audit/usecase"
	merchantHandler "github.com/piresc/chadpay/services/merchants/handler"
	merchantRepository "github.com/piresc/chadpay/services/merchants/repository"
	merchantUsecase "github.com/piresc/chadpay/services/merchants/usecase"
	"github.com/piresc/chadpay/services/payments/gateway"
	paymentHandler "github.com/piresc/chadpay/services/payments/handler"
	paymentRepository "github.com/piresc/chadpay/services/payments/repository"
	paymentUsecase "github.com/piresc/chadpay/services/payments/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "chadpay"
	configPath := config.GetEnv("CHADPAY_CONFIG", "config/chadpay.env")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Dependencies may still be starting alongside this service
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	defer cancelStartup()
	startupRetry := retry.DefaultConfig()

	// Initialize PostgreSQL database connection
	var postgresClient *database.PostgresClient
	err = retry.Do(startupCtx, startupRetry, "connect postgres", func(context.Context) (connErr error) {
		postgresClient, connErr = database.NewPostgresClient(configs.Database)
		return connErr
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// Redis only backs the settings cache and login rate limiting
	checks := map[string]health.Checker{"postgres": postgresClient}
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Warn("Redis unavailable, running without settings cache and rate limiting", zap.Error(err))
		redisClient = nil
	} else {
		checks["redis"] = redisClient
	}

	// Initialize NATS
	var natsClient *natspkg.Client
	err = retry.Do(startupCtx, startupRetry, "connect nats", func(context.Context) (connErr error) {
		natsClient, connErr = natspkg.NewClient(configs.NATS.URL, appName)
		return connErr
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	checks["nats"] = natsClient

	// Initialize repositories
	db := postgresClient.GetDB()
	merchantRepo := merchantRepository.NewMerchantRepository(configs, db, redisClient)
	paymentRepo := paymentRepository.NewPaymentRepository(db)
	auditRepo := auditRepository.NewAuditRepository(db)

	// Initialize gateway and QR code storage
	paymentGW := gateway.NewPaymentGW(natsClient)
	qrGenerator := qrcode.NewGenerator(configs.Payments.QRCodeDir, configs.Payments.QRCodeSize, qrcode.NewPNGEncoder())

	// Initialize use cases
	merchantUC := merchantUsecase.NewMerchantUC(configs, merchantRepo)
	paymentUC := paymentUsecase.NewPaymentUC(configs, paymentRepo, paymentGW, merchantRepo, merchantRepo, qrGenerator)
	auditUC := auditUsecase.NewAuditUC(configs, auditRepo)

	// Initialize handlers
	merchants := merchantHandler.NewHandler(merchantUC, redisClient, configs)
	payments := paymentHandler.NewHandler(paymentUC, natsClient, configs)
	audits := auditHandler.NewHandler(auditUC, configs)

	if err := payments.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, checks)
	e.Static("/static", configs.Payments.QRCodeDir)

	payments.RegisterRoutes(e)
	merchants.RegisterRoutes(e)
	audits.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(context.Context) error {
		payments.Close()
		natsClient.Close()
		return nil
	})
	if redisClient != nil {
		srv.OnShutdown(func(context.Context) error {
			return redisClient.Close()
		})
	}
	srv.OnShutdown(func(context.Context) error {
		return postgresClient.Close()
	})
	srv.OnShutdown(func(context.Context) error {
		if nrApp != nil {
			nrApp.Shutdown(5 * time.Second)
		}
		return zapLogger.Close()
	})

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", zap.Error(err))
	}
}
