package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rugcare.backend/internal/config"
	"rugcare.backend/internal/infrastructure/datasources/postgres"
	"rugcare.backend/internal/infrastructure/email"
	"rugcare.backend/internal/infrastructure/events"
	"rugcare.backend/internal/infrastructure/invoice"
	"rugcare.backend/internal/infrastructure/jobs"
	"rugcare.backend/internal/infrastructure/paymentprovider"
	"rugcare.backend/internal/infrastructure/repositories"
	"rugcare.backend/internal/interfaces/http/handlers"
	"rugcare.backend/internal/interfaces/http/middleware"
	"rugcare.backend/internal/usecases"
	"rugcare.backend/pkg/jwt"
	"rugcare.backend/pkg/logger"
	"rugcare.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = postgres.NewConnection
	newArchive = invoice.NewGCSArchive
	runServer  = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB   = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis is optional; once configured it has to be reachable
	if cfg.Redis.URL != "" {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		defer redis.Close()
		logger.Info(ctx, "Redis initialized")
	} else {
		logger.Warn(ctx, "REDIS_URL not set, running without confirmation locks and idempotency")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()
	logger.Info(ctx, "Connected to PostgreSQL via GORM")

	// Repositories
	paymentRepo := repositories.NewPaymentRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	profileRepo := repositories.NewBusinessProfileRepository(db)
	estimateRepo := repositories.NewEstimateRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	auditLogRepo := repositories.NewAuditLogRepository(db)

	// External collaborators
	provider := paymentprovider.NewStripeProvider(paymentprovider.StripeConfig{
		SecretKey: cfg.Stripe.SecretKey,
		APIURL:    cfg.Stripe.APIURL,
	})
	webhookVerifier := paymentprovider.NewWebhookVerifier(cfg.Stripe.WebhookSecret)
	emailSender := email.NewHTTPSender(email.Config{
		APIURL:  cfg.Email.APIURL,
		APIKey:  cfg.Email.APIKey,
		From:    cfg.Email.From,
		ReplyTo: cfg.Email.ReplyTo,
	}, nil)

	deps := usecases.PaymentConfirmationDeps{
		Provider:      provider,
		Payments:      paymentRepo,
		Jobs:          jobRepo,
		Profiles:      profileRepo,
		Estimates:     estimateRepo,
		Notifications: notificationRepo,
		AuditLogs:     auditLogRepo,
		Notifier:      emailSender,
		Invoices:      invoice.NewPDFGenerator(),
		CallTimeout:   cfg.Confirmation.CallTimeout,
	}

	// Optional collaborators stay nil interfaces when not configured
	if cfg.Storage.InvoiceBucket != "" {
		archive, err := newArchive(ctx, cfg.Storage.InvoiceBucket, cfg.Storage.CredentialsJSON)
		if err != nil {
			logger.Warn(ctx, "Invoice archive disabled", zap.Error(err))
		} else {
			defer archive.Close()
			deps.Archive = archive
		}
	}
	if publisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic); publisher != nil {
		defer publisher.Close()
		deps.Events = publisher
	}
	if locker := redis.NewConfirmationLocker(cfg.Confirmation.LockTTL, cfg.Confirmation.LockRetries); locker != nil {
		deps.Locker = locker
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Audience)

	// Usecases
	confirmationUsecase := usecases.NewPaymentConfirmationUsecase(deps)
	jobPaymentUsecase := usecases.NewJobPaymentUsecase(jobRepo)
	auditLogUsecase := usecases.NewAuditLogUsecase(auditLogRepo)

	// Handlers
	paymentConfirmationHandler := handlers.NewPaymentConfirmationHandler(confirmationUsecase)
	stripeWebhookHandler := handlers.NewStripeWebhookHandler(webhookVerifier, confirmationUsecase)
	jobPaymentHandler := handlers.NewJobPaymentHandler(jobPaymentUsecase)
	auditLogHandler := handlers.NewAuditLogHandler(auditLogUsecase)

	// Background jobs
	jobCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var reconcileJob *jobs.PendingPaymentReconcileJob
	if cfg.Confirmation.ReconcileEnabled {
		reconcileJob = jobs.NewPendingPaymentReconcileJob(
			paymentRepo,
			confirmationUsecase,
			cfg.Confirmation.ReconcileInterval,
			cfg.Confirmation.ReconcileMinAge,
			cfg.Confirmation.ReconcileMaxAge,
		)
		go reconcileJob.Start(jobCtx)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware("/health", "/metrics"))

	applyCORSMiddleware(r, cfg.Server.AllowedOrigins)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		paymentConfirmationHandler: paymentConfirmationHandler,
		stripeWebhookHandler:       stripeWebhookHandler,
		jobPaymentHandler:          jobPaymentHandler,
		auditLogHandler:            auditLogHandler,
		authMiddleware:             middleware.AuthMiddleware(jwtService),
	})

	for _, route := range r.Routes() {
		logger.Debug(ctx, "Registered route", zap.String("method", route.Method), zap.String("path", route.Path))
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info(ctx, "Shutting down server...")
		if reconcileJob != nil {
			reconcileJob.Stop()
		}
		cancel()
	}()

	logger.Info(ctx, "RugCare backend starting",
		zap.String("port", cfg.Server.Port),
		zap.String("api", "http://localhost:"+cfg.Server.Port+"/api/v1"),
	)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
