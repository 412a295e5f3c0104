// Command kiranactl runs catalog maintenance against the kirana database.
//
// Usage:
//
//	kiranactl <command> [flags]
//
// Every command is idempotent and safe to re-run.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/dukerupert/kirana/internal"
	"github.com/dukerupert/kirana/internal/cache"
	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/repository"
	"github.com/dukerupert/kirana/internal/service"
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		pool    *pgxpool.Pool
		catalog *cache.Catalog
	)
	defer func() {
		if catalog != nil {
			catalog.Close()
		}
		if pool != nil {
			pool.Close()
		}
	}()

	cli := &CLI{
		Connect: func(cmd *cobra.Command) (domain.MaintenanceService, error) {
			// Load configuration
			cfg, err := internal.NewConfig()
			if err != nil {
				return nil, fmt.Errorf("config initialization failed: %w", err)
			}

			// Logs go to stderr so command output stays clean
			logger := internal.NewLogger(os.Stderr, cfg.Env, cfg.LogLevel)

			pool, err = pgxpool.New(cmd.Context(), cfg.DatabaseUrl)
			if err != nil {
				return nil, fmt.Errorf("failed to create connection pool: %w", err)
			}
			if err := pool.Ping(cmd.Context()); err != nil {
				return nil, fmt.Errorf("database ping failed: %w", err)
			}

			var store repository.Querier = repository.NewStore(pool)

			// Writes go through the cache so the API stops serving stale shops
			if cfg.Redis.URL != "" {
				rdb, err := cache.Connect(cmd.Context(), cfg.Redis.URL, cfg.Redis.Password, cfg.Redis.DB)
				if err != nil {
					return nil, fmt.Errorf("redis connection failed: %w", err)
				}
				catalog = cache.NewCatalog(repository.NewStore(pool), rdb, cfg.Redis.TTL, logger)
				store = catalog
			}

			return service.NewMaintenanceService(store, logger), nil
		},
	}

	return cli.Command().ExecuteContext(ctx)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
