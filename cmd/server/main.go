package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/seu-repo/condomino/internal/adapter/cache"
	"github.com/seu-repo/condomino/internal/adapter/external/payment"
	"github.com/seu-repo/condomino/internal/adapter/http/fiber/handlers"
	"github.com/seu-repo/condomino/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/condomino/internal/adapter/storage/postgres"
	"github.com/seu-repo/condomino/internal/adapter/vault"
	"github.com/seu-repo/condomino/internal/domain"
	"github.com/seu-repo/condomino/internal/infrastructure/circuitbreaker"
	"github.com/seu-repo/condomino/internal/ports"
	"github.com/seu-repo/condomino/internal/scheduler"
	"github.com/seu-repo/condomino/internal/service/affiliate"
	"github.com/seu-repo/condomino/internal/service/auth"
	"github.com/seu-repo/condomino/internal/service/booking"
	"github.com/seu-repo/condomino/internal/service/email"
	"github.com/seu-repo/condomino/pkg/config"

	// Import metrics to register them
	_ "github.com/seu-repo/condomino/internal/observability/telemetry"
)

const (
	serviceName    = "condomino"
	serviceVersion = "v1.0.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting Condomino",
		zap.String("service", serviceName),
		zap.String("version", serviceVersion),
		zap.String("environment", cfg.App.Environment),
	)

	// Vault overrides file/env secrets when enabled
	if cfg.Vault.Enabled {
		if err := loadSecretsFromVault(cfg, logger); err != nil {
			logger.Fatal("Failed to load secrets from Vault", zap.Error(err))
		}
	}

	// PostgreSQL
	db, err := postgres.NewConnection(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get underlying SQL DB", zap.Error(err))
	}
	defer postgres.Close(db)

	if cfg.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}
	if cfg.Database.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}

	// Redis, falling back to an in-process cache for single-node deploys
	appCache, err := cache.NewRedisCache(cfg.Redis.URL, logger)
	if err != nil {
		logger.Warn("Redis unavailable, using local cache", zap.Error(err))
		appCache = cache.NewLocalCache(time.Minute, logger)
	}
	defer appCache.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(db, logger)
	tenantRepo := postgres.NewTenantRepository(db, logger)
	deviceRepo := postgres.NewTrustedDeviceRepository(db, logger)
	facilityRepo := postgres.NewFacilityRepository(db, logger)
	bookingRepo := postgres.NewBookingRepository(db, logger)
	commissionRepo := postgres.NewCommissionRepository(db, logger)
	affiliateRepo := postgres.NewAffiliateRepository(db, logger)

	clock := ports.SystemClock{}

	// Services
	authConfig := auth.DefaultConfig()
	if cfg.JWT.AccessTokenDuration > 0 {
		authConfig.StandardTTL = cfg.JWT.AccessTokenDuration
	}
	tokenIssuer := auth.NewTokenIssuer(cfg.JWT.Secret, clock, logger)
	totpVerifier := auth.NewTOTPVerifier(cfg.App.Name)
	authService := auth.NewService(userRepo, tenantRepo, deviceRepo, totpVerifier, tokenIssuer, clock, authConfig, logger)

	emailService, err := email.NewService(emailConfig(cfg), logger)
	if err != nil {
		logger.Fatal("Failed to initialize email service", zap.Error(err))
	}

	// Every outbound payment call goes through the circuit breaker
	gateway := circuitbreaker.NewPayoutGateway(
		payment.NewStripeGateway(cfg.Payment.Stripe.SecretKey, logger),
		logger,
	)

	bookingService := booking.NewService(bookingRepo, facilityRepo, userRepo, gateway, emailService, clock, bookingConfig(cfg), logger)
	affiliateService := affiliate.NewService(commissionRepo, affiliateRepo, tenantRepo, gateway, appCache, clock, affiliateConfig(cfg), logger)

	// Background sweeps
	runner := scheduler.NewRunner(clock, logger)
	runner.Add("booking-expiry", cfg.Booking.SweepInterval, bookingService.ExpireStaleBookings)
	runner.Add("affiliate-settlement", cfg.Affiliate.SettlementInterval, affiliateService.SettleAffiliatePayouts)

	runnerCtx, stopRunner := context.WithCancel(context.Background())
	runner.Start(runnerCtx)

	// HTTP server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	if cfg.CORS.Enabled {
		app.Use(middleware.NewCORS(cfg.CORS))
	}
	if cfg.CircuitBreaker.Enabled {
		app.Use(middleware.CircuitBreaker(logger))
	}

	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		if err := sqlDB.Ping(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).SendString("Database not ready")
		}
		return c.SendString("Ready")
	})

	if cfg.Prometheus.Enabled {
		metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		app.Get(cfg.Prometheus.Path, func(c *fiber.Ctx) error {
			metricsHandler(c.Context())
			return nil
		})
	}

	registerRoutes(app, cfg, authService, bookingService, affiliateService, logger)

	go func() {
		logger.Info("Starting HTTP server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	stopRunner()
	runner.Wait()

	logger.Info("Server exited gracefully")
}

func registerRoutes(
	app *fiber.App,
	cfg *config.Config,
	authService ports.AuthService,
	bookingService ports.BookingService,
	affiliateService ports.AffiliateService,
	logger *zap.Logger,
) {
	authHandler := handlers.NewAuthHandler(authService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	affiliateHandler := handlers.NewAffiliateHandler(affiliateService, logger)
	webhookHandler := handlers.NewWebhookHandler(affiliateService, cfg.Payment.Stripe.WebhookSecret, logger)

	v1 := app.Group("/api/v1")

	// Public routes
	v1.Post("/auth/login", authHandler.Login)
	v1.Post("/webhooks/billing", webhookHandler.HandleBillingEvent)

	// Authenticated routes, with the tenant scope bound for downstream reads
	protected := v1.Group("", middleware.AuthRequired(authService), middleware.TenantScope())
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/2fa/enroll", authHandler.Enroll2FA)

	bookings := protected.Group("/bookings", middleware.TenantRequired())
	bookings.Post("/", bookingHandler.Create)
	bookings.Get("/", bookingHandler.List)
	bookings.Put("/:id/receipt", bookingHandler.AttachReceipt)
	bookings.Post("/:id/review", middleware.RoleRequired("syndic", "condo_manager", "staff"), bookingHandler.Review)
	bookings.Delete("/:id", bookingHandler.Cancel)

	affiliates := protected.Group("/affiliate", middleware.RoleRequired("affiliate"))
	affiliates.Get("/commissions", affiliateHandler.ListCommissions)
	affiliates.Get("/balance", affiliateHandler.Balance)
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.App.Environment == "development" {
		return zap.NewDevelopment()
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Logging.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Logging.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
		}
		zapCfg.Level = level
	}
	if cfg.Logging.Sampling.Enabled {
		zapCfg.Sampling = &zap.SamplingConfig{
			Initial:    cfg.Logging.Sampling.Initial,
			Thereafter: cfg.Logging.Sampling.Thereafter,
		}
	}
	return zapCfg.Build()
}

func loadSecretsFromVault(cfg *config.Config, logger *zap.Logger) error {
	sm, err := vault.NewSecretManager(cfg.Vault.Address, cfg.Vault.Token)
	if err != nil {
		return err
	}

	if url, err := sm.GetDatabaseURL(); err == nil {
		cfg.Database.URL = url
	} else {
		logger.Warn("Database URL not found in Vault, keeping configured value", zap.Error(err))
	}
	if secret, err := sm.GetJWTSecret(); err == nil {
		cfg.JWT.Secret = secret
	} else {
		logger.Warn("JWT secret not found in Vault, keeping configured value", zap.Error(err))
	}
	if key, err := sm.GetStripeSecretKey(); err == nil {
		cfg.Payment.Stripe.SecretKey = key
	} else {
		logger.Warn("Stripe key not found in Vault, keeping configured value", zap.Error(err))
	}
	return nil
}

func bookingConfig(cfg *config.Config) *domain.BookingConfig {
	bc := domain.DefaultBookingConfig()
	if cfg.Booking.GracePeriod > 0 {
		bc.GraceWindow = cfg.Booking.GracePeriod
	}
	if cfg.Booking.SweepInterval > 0 {
		bc.SweepInterval = cfg.Booking.SweepInterval
	}
	if cfg.Region.Timezone != "" {
		if loc, err := time.LoadLocation(cfg.Region.Timezone); err == nil {
			bc.Location = loc
		}
	}
	return bc
}

func affiliateConfig(cfg *config.Config) *domain.AffiliateConfig {
	ac := domain.DefaultAffiliateConfig()
	if cfg.Affiliate.CommissionRate > 0 {
		ac.CommissionRate = cfg.Affiliate.CommissionRate
	}
	if cfg.Affiliate.MaturationDays > 0 {
		ac.MaturationDays = cfg.Affiliate.MaturationDays
	}
	if cfg.Affiliate.MinPayout > 0 {
		ac.MinPayout = cfg.Affiliate.MinPayout
	}
	return ac
}

func emailConfig(cfg *config.Config) *email.Config {
	ec := email.DefaultConfig()
	e := cfg.Notification.Email
	if e.Provider != "" {
		ec.Provider = e.Provider
	}
	if e.From != "" {
		ec.FromEmail = e.From
	}
	if e.FromName != "" {
		ec.FromName = e.FromName
	}
	if e.APIKey != "" {
		ec.SendGridAPIKey = e.APIKey
	}
	if e.SMTPHost != "" {
		ec.SMTPHost = e.SMTPHost
	}
	if e.SMTPPort != 0 {
		ec.SMTPPort = e.SMTPPort
	}
	ec.SMTPUsername = e.SMTPUsername
	ec.SMTPPassword = e.SMTPPassword
	if e.BaseURL != "" {
		ec.BaseURL = e.BaseURL
	}
	return ec
}
