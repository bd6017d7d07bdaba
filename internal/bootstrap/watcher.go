package bootstrap

import (
	"log/slog"

	"github.com/osse101/LootDrop_Go/internal/config"
	"github.com/osse101/LootDrop_Go/internal/scheduler"
	"github.com/osse101/LootDrop_Go/internal/worker"
)

// CatalogWatcher periodically reloads the loot tables file.
type CatalogWatcher struct {
	pool      *worker.Pool
	scheduler *scheduler.Scheduler
}

// StartCatalogWatcher starts watching cfg.LootTablesPath. It returns nil
// when no file is configured or the reload interval is zero.
func StartCatalogWatcher(cfg *config.Config, reloader worker.CatalogReloader) *CatalogWatcher {
	if cfg.LootTablesPath == "" || cfg.CatalogReload <= 0 {
		return nil
	}

	pool := worker.NewPool(1, 1)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(CatalogWatcherJobName, cfg.CatalogReload, worker.NewCatalogWatchJob(reloader, cfg.LootTablesPath))

	slog.Info(LogMsgCatalogWatchStart, "path", cfg.LootTablesPath, "interval", cfg.CatalogReload)
	return &CatalogWatcher{pool: pool, scheduler: sched}
}

// Stop halts the schedule, then the worker.
func (w *CatalogWatcher) Stop() {
	if w == nil {
		return
	}
	w.scheduler.Stop()
	w.pool.Stop()
}
