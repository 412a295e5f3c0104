package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/shopspring/decimal"

	"github.com/dukerupert/kirana/internal"
	"github.com/dukerupert/kirana/internal/auth"
	"github.com/dukerupert/kirana/internal/cache"
	"github.com/dukerupert/kirana/internal/handler/api"
	"github.com/dukerupert/kirana/internal/jobs"
	"github.com/dukerupert/kirana/internal/middleware"
	"github.com/dukerupert/kirana/internal/repository"
	"github.com/dukerupert/kirana/internal/router"
	"github.com/dukerupert/kirana/internal/routes"
	"github.com/dukerupert/kirana/internal/service"
	"github.com/dukerupert/kirana/internal/telemetry"
	"github.com/dukerupert/kirana/internal/worker"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

const shutdownTimeout = 15 * time.Second

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Prices and totals go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Error tracking
	release := cfg.Sentry.Release
	if release == "" {
		release = version
	}
	flushSentry, err := telemetry.InitSentry(telemetry.SentryConfig{
		DSN:              cfg.Sentry.DSN,
		Enabled:          cfg.Sentry.Enabled,
		Environment:      cfg.Sentry.Environment,
		Release:          release,
		SampleRate:       cfg.Sentry.SampleRate,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
		Debug:            cfg.Sentry.Debug,
	}, logger)
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	defer flushSentry()

	telemetry.InitBusinessMetrics("kirana")

	// Initialize database/sql connection for migrations
	logger.Info("Connecting to database...")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	// Verify database connection
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("Database connection established")

	// Run migrations
	logger.Info("Running database migrations...")
	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize pgx connection pool for application
	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	sqlStore := repository.NewStore(pool)
	var store repository.Store = sqlStore

	// Optional catalog cache
	if cfg.Redis.URL != "" {
		logger.Info("Connecting to redis...")
		rdb, err := cache.Connect(ctx, cfg.Redis.URL, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("redis connection failed: %w", err)
		}
		catalog := cache.NewCatalog(sqlStore, rdb, cfg.Redis.TTL, logger)
		defer catalog.Close()
		store = catalog
		logger.Info("Catalog cache enabled", "ttl", cfg.Redis.TTL)
	}

	// Initialize services
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(store, tokens, cfg.Auth.OTPTTL, logger)
	userService := service.NewUserService(store)
	shopService := service.NewShopService(store)
	productService := service.NewProductService(store)
	cartService := service.NewCartService(store)
	orderService := service.NewOrderService(store, logger)

	// Background jobs
	w := worker.NewWorker(worker.Config{RunOnStart: true}, logger)
	err = w.Register(worker.Job{
		Name:     jobs.JobNamePurgeExpiredOTPs,
		Interval: cfg.Jobs.OTPCleanupInterval,
		Timeout:  time.Minute,
		Run: func(ctx context.Context) error {
			result, err := jobs.PurgeExpiredOTPs(ctx, store)
			if err != nil {
				return err
			}
			logger.Debug("expired otps purged", "deleted", result.OTPsDeleted)
			return nil
		},
	})
	if err != nil {
		return fmt.Errorf("failed to register cleanup job: %w", err)
	}
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("worker stopped", "error", err)
		}
	}()

	// ==========================================================================
	// Middleware
	// ==========================================================================

	metrics := middleware.NewMetrics("kirana", nil)

	securityConfig := middleware.DefaultSecurityHeadersConfig()
	if !cfg.IsProduction() {
		securityConfig.HSTSMaxAge = 0 // Disable HSTS in development
	}

	defaultRateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	defer defaultRateLimiter.Stop()
	authRateLimiter := middleware.NewRateLimiter(middleware.StrictRateLimiterConfig())
	defer authRateLimiter.Stop()

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		telemetry.SentryMiddleware(),
		middleware.WithRequestLogger(logger),
		metrics.Middleware,
		middleware.SecurityHeaders(securityConfig),
		middleware.MaxBodySize(middleware.DefaultMaxBodySize),
		middleware.RouteTimeout(middleware.DefaultTimeout, map[string]time.Duration{
			routes.ExportRoute: middleware.ExportTimeout,
		}),
		defaultRateLimiter.Middleware,
		router.Logger(logger),
	)

	// Metrics endpoint (no auth required, but should be protected in production via firewall)
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	routes.RegisterAPIRoutes(r, routes.APIDeps{
		Auth:           authService,
		AuthLimiter:    authRateLimiter.Middleware,
		HealthHandler:  api.NewHealthHandler(sqlStore, version, logger),
		AuthHandler:    api.NewAuthHandler(authService, !cfg.IsProduction()),
		ShopHandler:    api.NewShopHandler(shopService),
		ProductHandler: api.NewProductHandler(productService),
		CartHandler:    api.NewCartHandler(cartService),
		OrderHandler:   api.NewOrderHandler(orderService),
		UserHandler:    api.NewUserHandler(userService),
	})

	// ==========================================================================
	// Start server
	// ==========================================================================

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router.Wrap(r, router.CORS([]string{cfg.FrontendURL})),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting API server", "address", srv.Addr, "env", cfg.Env, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	stop()
	<-workerDone
	logger.Info("Server stopped")

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
