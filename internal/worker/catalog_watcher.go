package worker

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/osse101/LootDrop_Go/internal/logger"
)

// CatalogReloader swaps in the loot tables found at path
type CatalogReloader interface {
	ReloadCatalog(ctx context.Context, path string) ([]string, error)
}

// CatalogWatchJob reloads the loot tables whenever the file's modification
// time moves past the last successful load. A failed reload is retried on
// the next run.
type CatalogWatchJob struct {
	reloader CatalogReloader
	path     string

	mu      sync.Mutex
	lastMod time.Time
}

// NewCatalogWatchJob creates a watcher for path. The file's current
// modification time is the baseline, since it was loaded at startup.
func NewCatalogWatchJob(reloader CatalogReloader, path string) *CatalogWatchJob {
	job := &CatalogWatchJob{reloader: reloader, path: path}
	if info, err := os.Stat(path); err == nil {
		job.lastMod = info.ModTime()
	}
	return job
}

// Process implements Job
func (j *CatalogWatchJob) Process(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	log := logger.FromContext(ctx)

	info, err := os.Stat(j.path)
	if err != nil {
		log.Warn(LogMsgCatalogStatFailed, "path", j.path, "error", err)
		return nil
	}
	if !info.ModTime().After(j.lastMod) {
		return nil
	}

	log.Info(LogMsgCatalogChanged, "path", j.path, "modified", info.ModTime())
	pools, err := j.reloader.ReloadCatalog(ctx, j.path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextCatalogReloadJob, err)
	}

	j.lastMod = info.ModTime()
	log.Info(LogMsgCatalogReloaded, "path", j.path, "pools", pools)
	return nil
}
