package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/LootDrop_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  *server.Server
	Watcher *CatalogWatcher
	Storage *Storage
}

// GracefulShutdown stops the HTTP server first so no new openings arrive,
// then the catalog watcher, then storage. Errors are logged and do not stop
// the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	components.Watcher.Stop()

	if components.Storage != nil {
		components.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
