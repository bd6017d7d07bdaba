package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/LootDrop_Go/internal/config"
	"github.com/osse101/LootDrop_Go/internal/lootbox"
	"github.com/osse101/LootDrop_Go/internal/lootpool"
	"github.com/osse101/LootDrop_Go/internal/validation"
)

// LoadCatalog returns the configured loot tables, or the compiled-in catalog
// when no path is set.
func LoadCatalog(cfg *config.Config, v validation.SchemaValidator) (*lootpool.Catalog, error) {
	if cfg.LootTablesPath == "" {
		slog.Info(LogMsgUsingDefaultCatalog)
		return lootpool.DefaultCatalog(), nil
	}

	cat, err := lootpool.LoadFile(cfg.LootTablesPath, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	return cat, nil
}

// RollerOptions builds the roller options for new sessions. A non-zero seed
// makes all sessions draw from one shared deterministic stream.
func RollerOptions(cfg *config.Config) []lootbox.Option {
	if cfg.RNGSeed == 0 {
		return nil
	}
	return []lootbox.Option{lootbox.WithSource(lootbox.NewSeededSource(cfg.RNGSeed))}
}
