package main

// @title Nexa API
// @version 1.0
// @description Token ledger and billing backend for the Nexa AI platform.

// @contact.name API Support
// @contact.url https://nexa.ai/support
// @contact.email support@nexa.ai

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nexaai/nexa-backend/config"
	"github.com/nexaai/nexa-backend/pkg/container"
	custommiddleware "github.com/nexaai/nexa-backend/pkg/middleware"
)

func main() {
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0, // Capture 100% of transactions in development, adjust in production
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Container wires the store, ledger, resolver, services and handlers
	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize application: %v", err)
	}
	defer c.Close()

	// Cross-instance premium invalidation
	busCtx, busCancel := context.WithCancel(context.Background())
	defer busCancel()
	go c.InvalidationBus.Listen(busCtx)

	c.Cron.Start()
	log.Printf("✅ Cron jobs started successfully")

	e := echo.New()
	e.HideBanner = true

	webhookRateLimiter := custommiddleware.NewRateLimiter(100, 20) // Stripe retries bursts

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true, // Repanic after capturing to let the Recover middleware handle it
		}))
	}

	e.Use(c.Metrics.Middleware())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{
			"http://localhost:3000", // Development
			"https://app.nexa.ai",   // Production app
			"https://nexa.ai",       // Marketing site
		},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())

	// Global IP rate limiting
	e.Use(c.RateLimiter.RateLimitMiddleware())

	// Health and status endpoints (public)
	e.GET("/", func(ec echo.Context) error {
		return ec.JSON(http.StatusOK, map[string]any{
			"name":        "Nexa API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(ec echo.Context) error {
		if err := c.DB.Ping(ec.Request().Context()); err != nil {
			return ec.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := c.Cache.Redis.Ping(ec.Request().Context()).Result(); err != nil {
			return ec.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return ec.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")

	v1.GET("/ping", func(ec echo.Context) error {
		return ec.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Public catalog and pricing routes
	v1.GET("/pricing", c.BillingHandler.GetPricing)
	v1.GET("/models", c.CatalogHandler.ListModels)
	v1.GET("/models/:id/estimate", c.CatalogHandler.EstimateCost)

	// Stripe webhook with its own rate limit; signature-verified, not JWT
	v1.POST("/webhook/stripe", c.BillingHandler.HandleWebhook, webhookRateLimiter.RateLimitMiddleware())

	// Protected routes (require JWT with blacklist validation)
	protected := v1.Group("")
	protected.Use(custommiddleware.JWTAuth(cfg.JWTSecret, c.TokenBlacklist))
	protected.Use(c.PremiumRateLimiter.Middleware())
	{
		protected.POST("/completions", c.CompletionsHandler.Create)

		accountGroup := protected.Group("/account")
		{
			accountGroup.POST("/provision", c.AccountHandler.Provision)
			accountGroup.GET("/balance", c.AccountHandler.GetBalance)
			accountGroup.GET("/premium-status", c.AccountHandler.GetPremiumStatus)
			accountGroup.GET("/transactions", c.AccountHandler.ListTransactions)
			accountGroup.GET("/transactions/export", c.AccountHandler.ExportTransactions)
		}

		billingGroup := protected.Group("/billing")
		{
			billingGroup.POST("/checkout", c.BillingHandler.CreateCheckout)
			billingGroup.POST("/portal", c.BillingHandler.CreatePortalSession)
		}

		protected.POST("/auth/signout", c.SessionHandler.SignOut)
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 Nexa API starting on %s", address)
	log.Printf("📝 Log level: %s, Log format: %s", cfg.LogLevel, cfg.LogFormat)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("🎟️  Daily allowance: %d tokens, signup grant: %d tokens", cfg.DailyAllowance, cfg.SignupGrant)

	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	busCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
