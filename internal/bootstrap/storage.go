package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LootDrop_Go/internal/config"
	"github.com/osse101/LootDrop_Go/internal/database"
	"github.com/osse101/LootDrop_Go/internal/database/postgres"
	"github.com/osse101/LootDrop_Go/internal/repository"
	"github.com/osse101/LootDrop_Go/internal/repository/memory"
)

// Storage holds the drop history backend and, for postgres, its pool.
type Storage struct {
	History repository.DropHistory
	pool    *pgxpool.Pool
}

// InitializeStorage creates the drop history repository selected by cfg.Storage.
// For postgres it connects, then applies pending migrations.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		slog.Info(LogMsgStorageInitialized, "storage", cfg.Storage)
		return &Storage{History: memory.NewDropHistory()}, nil

	case config.StoragePostgres:
		pool, err := database.NewPool(ctx, database.PoolConfig{
			ConnString:      cfg.GetDBConnString(),
			MaxConns:        cfg.DBMaxConns,
			MaxConnIdleTime: cfg.DBMaxConnIdleTime,
			MaxConnLifetime: cfg.DBMaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
		}
		slog.Info(LogMsgStorageInitialized, "storage", cfg.Storage, "host", cfg.DBHost, "db", cfg.DBName)
		return &Storage{History: postgres.NewDropHistoryRepository(pool), pool: pool}, nil
	}

	return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorage, cfg.Storage)
}

// DBPool returns the pool for readiness checks, or an untyped nil when the
// backend has no database.
func (s *Storage) DBPool() database.Pool {
	if s.pool == nil {
		return nil
	}
	return s.pool
}

// Close releases the database pool, if any.
func (s *Storage) Close() {
	if s.pool != nil {
		slog.Info(LogMsgClosingDatabase)
		s.pool.Close()
	}
}
