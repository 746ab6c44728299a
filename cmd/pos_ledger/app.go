package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/SscSPs/pos_ledger/internal/adapters/database/bolt"
	"github.com/SscSPs/pos_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/pos_ledger/internal/adapters/database/pgsql"
	"github.com/SscSPs/pos_ledger/internal/adapters/database/sqlite"
	"github.com/SscSPs/pos_ledger/internal/core/chart"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger/internal/platform/config"
	"github.com/SscSPs/pos_ledger/pkg/database"
)

// newLogger builds the process logger: JSON in production, text otherwise.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.IsProduction {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// loadChart returns the chart from CHART_FILE, or the seed chart when none is configured.
func loadChart(cfg *config.Config, logger *slog.Logger) (*chart.Chart, error) {
	if cfg.ChartFile == "" {
		return chart.Default(), nil
	}
	c, err := chart.LoadFile(cfg.ChartFile)
	if err != nil {
		return nil, err
	}
	logger.Info("Chart of accounts loaded", slog.String("file", cfg.ChartFile), slog.Int("accounts", c.Len()))
	return c, nil
}

// openStore opens the ledger store selected by STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, portsrepo.StoreLifecycle, error) {
	logger = logger.With(slog.String("driver", cfg.StoreDriver))

	switch cfg.StoreDriver {
	case config.StoreMemory:
		store := memory.NewStore()
		logger.Warn("Using in-memory store, data is lost on exit")
		return portsrepo.RepositoryProvider{LedgerRepo: store, ProductRepo: store}, store, nil

	case config.StoreSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("SQLite store opened", slog.String("path", cfg.SQLitePath))
		return portsrepo.RepositoryProvider{LedgerRepo: store, ProductRepo: store}, store, nil

	case config.StoreBolt:
		store, err := bolt.Open(cfg.BoltPath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Bolt store opened", slog.String("path", cfg.BoltPath))
		return portsrepo.RepositoryProvider{LedgerRepo: store, ProductRepo: store}, store, nil

	case config.StorePostgres:
		if err := pgsql.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		return pgsql.NewRepositoryProvider(dbPool), &pgsql.BaseRepository{Pool: dbPool}, nil

	default:
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
