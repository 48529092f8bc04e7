package container

import (
	"time"

	"github.com/nexaai/nexa-backend/config"
	"github.com/nexaai/nexa-backend/pkg/ai/llm"
	"github.com/nexaai/nexa-backend/pkg/api/handlers"
	"github.com/nexaai/nexa-backend/pkg/auth"
	"github.com/nexaai/nexa-backend/pkg/backup"
	"github.com/nexaai/nexa-backend/pkg/billing"
	"github.com/nexaai/nexa-backend/pkg/cache"
	"github.com/nexaai/nexa-backend/pkg/chat"
	"github.com/nexaai/nexa-backend/pkg/database"
	"github.com/nexaai/nexa-backend/pkg/email"
	"github.com/nexaai/nexa-backend/pkg/export"
	"github.com/nexaai/nexa-backend/pkg/jobs"
	"github.com/nexaai/nexa-backend/pkg/ledger"
	"github.com/nexaai/nexa-backend/pkg/logger"
	"github.com/nexaai/nexa-backend/pkg/metrics"
	"github.com/nexaai/nexa-backend/pkg/middleware"
	"github.com/nexaai/nexa-backend/pkg/premium"
	"github.com/nexaai/nexa-backend/pkg/tokenstore"
)

// Container holds all application dependencies
type Container struct {
	Config  *config.Config
	Logger  logger.Logger
	Metrics *metrics.Metrics

	// Infrastructure
	DB    *database.Client
	Cache *cache.Client

	// Ledger core
	Store            *tokenstore.Store
	LedgerService    *ledger.Service
	RefreshScheduler *ledger.RefreshScheduler
	PremiumResolver  *premium.Resolver
	InvalidationBus  *premium.InvalidationBus

	// Services
	ChatService    *chat.Service
	BillingService *billing.Service
	EmailService   *email.Service
	ExportService  *export.Service

	// Background jobs
	BackupService *backup.Service
	Cron          *jobs.CronManager

	// Auth
	TokenBlacklist *auth.TokenBlacklist

	// Rate limiting
	RateLimiter        *middleware.RateLimiter
	PremiumRateLimiter *middleware.PremiumRateLimiter

	// Handlers
	AccountHandler     *handlers.AccountHandler
	CompletionsHandler *handlers.CompletionsHandler
	BillingHandler     *handlers.BillingHandler
	CatalogHandler     *handlers.CatalogHandler
	SessionHandler     *handlers.SessionHandler
}

// New creates and initializes all application dependencies
func New(cfg *config.Config) (*Container, error) {
	c := &Container{
		Config:  cfg,
		Logger:  logger.New(cfg.LogLevel, cfg.LogFormat),
		Metrics: metrics.New(),
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.initLedger()
	c.initServices()
	if err := c.initJobs(); err != nil {
		return nil, err
	}
	c.initHandlers()

	c.Logger.Info("Container initialized successfully",
		"environment", cfg.APIEnvironment,
		"database", "connected",
		"cache", "connected")

	return c, nil
}

// initInfrastructure initializes database and cache connections
func (c *Container) initInfrastructure() error {
	var err error

	c.DB, err = database.NewClient(c.Config.DatabaseURL)
	if err != nil {
		c.Logger.Error("Failed to connect to database", "error", err)
		return err
	}

	c.Cache, err = cache.NewClient(c.Config.RedisURL)
	if err != nil {
		c.Logger.Error("Failed to connect to cache", "error", err)
		return err
	}

	return nil
}

// initLedger wires the balance store, pricing ledger, refresh scheduler and
// premium resolution. Everything downstream depends on these.
func (c *Container) initLedger() {
	c.Store = tokenstore.NewStore(c.DB.Ent, tokenstore.Config{
		SignupGrant:    c.Config.SignupGrant,
		DailyAllowance: c.Config.DailyAllowance,
		RefreshWindow:  c.Config.RefreshWindow,
	})

	c.LedgerService = ledger.NewService(c.Store, c.Logger)
	c.RefreshScheduler = ledger.NewRefreshScheduler(c.Store, c.Config.RefreshWindow, c.Logger)
	c.PremiumResolver = premium.NewResolver(c.Store, c.Store, c.Config, c.Metrics, c.Logger)
	c.InvalidationBus = premium.NewInvalidationBus(c.Cache, c.PremiumResolver, c.Logger)
}

// initServices initializes the domain services
func (c *Container) initServices() {
	c.TokenBlacklist = auth.NewTokenBlacklist(c.Cache)

	c.EmailService = email.NewService(
		c.Config.EmailFrom,
		c.Config.EmailFromName,
		c.Config.FrontendURL,
		c.Config.SendGridAPIKey,
	)

	provider := llm.NewOpenAIProvider(llm.Config{
		APIKey:  c.Config.OpenAIAPIKey,
		BaseURL: c.Config.OpenAIBaseURL,
	}, c.Metrics, c.Logger)

	c.ChatService = chat.NewService(
		c.LedgerService,
		c.PremiumResolver,
		provider,
		c.RefreshScheduler,
		c.InvalidationBus,
		c.EmailService,
		c.Config.LowBalanceWarnAt,
		c.Logger,
	)

	c.BillingService = billing.NewService(
		c.DB.Ent,
		c.Store,
		c.Cache,
		c.EmailService,
		c.InvalidationBus,
		&billing.StripeConfig{
			SecretKey:     c.Config.StripeSecretKey,
			WebhookSecret: c.Config.StripeWebhookSecret,
			PriceStarter:  c.Config.StripePriceStarter,
			PricePlus:     c.Config.StripePricePlus,
			PricePro:      c.Config.StripePricePro,
			SuccessURL:    c.Config.StripeSuccessURL,
			CancelURL:     c.Config.StripeCancelURL,
		},
		c.Metrics,
		c.Logger,
	)

	c.ExportService = export.NewService(c.Store)

	c.RateLimiter = middleware.NewRateLimiter(c.Config.RateLimitRequestsPerMinute, c.Config.RateLimitBurst)
	c.PremiumRateLimiter = middleware.NewPremiumRateLimiter(c.PremiumResolver)
}

// initJobs wires the cron scheduler and the optional S3 backup service
func (c *Container) initJobs() error {
	if c.Config.BackupEnabled {
		svc, err := backup.NewService(backup.Config{
			AWSAccessKeyID:     c.Config.AWSAccessKeyID,
			AWSSecretAccessKey: c.Config.AWSSecretAccessKey,
			AWSRegion:          c.Config.AWSRegion,
			S3Bucket:           c.Config.BackupS3Bucket,
			DatabaseURL:        c.Config.DatabaseURL,
			LocalBackupDir:     c.Config.BackupLocalDir,
			RetentionDays:      c.Config.BackupRetentionDays,
		})
		if err != nil {
			c.Logger.Error("Failed to initialize backup service", "error", err)
			return err
		}
		c.BackupService = svc
	}

	c.Cron = jobs.NewCronManager(c.Store, c.BackupService, c.Config.TransactionRetentionDays, nil)
	return c.Cron.SetupJobs()
}

// initHandlers initializes all HTTP handlers
func (c *Container) initHandlers() {
	c.AccountHandler = handlers.NewAccountHandler(
		c.LedgerService,
		c.Store,
		c.PremiumResolver,
		c.ExportService,
		c.RefreshScheduler,
		c.Config.RefreshWindow,
	)

	c.CompletionsHandler = handlers.NewCompletionsHandler(c.ChatService, c.Metrics)
	c.BillingHandler = handlers.NewBillingHandler(c.BillingService)
	c.CatalogHandler = handlers.NewCatalogHandler(c.LedgerService)
	tokenLifetime := time.Duration(c.Config.JWTExpirationHours) * time.Hour
	c.SessionHandler = handlers.NewSessionHandler(c.TokenBlacklist, c.InvalidationBus, tokenLifetime)
}

// Close closes all resources (database, cache connections)
func (c *Container) Close() error {
	c.Logger.Info("Shutting down container...")

	if c.Cron != nil {
		c.Cron.Stop()
	}

	if err := c.DB.Close(); err != nil {
		c.Logger.Error("Failed to close database", "error", err)
		return err
	}

	if err := c.Cache.Close(); err != nil {
		c.Logger.Error("Failed to close cache", "error", err)
		return err
	}

	c.Logger.Info("Container shutdown complete")
	return nil
}
