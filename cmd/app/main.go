// @title LootDrop API
// @version 1.0
// @description Weighted loot-drop simulator.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/LootDrop_Go/docs"
	"github.com/osse101/LootDrop_Go/internal/bootstrap"
	"github.com/osse101/LootDrop_Go/internal/config"
	"github.com/osse101/LootDrop_Go/internal/domain"
	"github.com/osse101/LootDrop_Go/internal/server"
	"github.com/osse101/LootDrop_Go/internal/session"
	"github.com/osse101/LootDrop_Go/internal/simulator"
	"github.com/osse101/LootDrop_Go/internal/validation"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err := run(cfg); err != nil {
		slog.Error("LootDrop exited with error", "error", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	validator := validation.NewSchemaValidator()
	catalog, err := bootstrap.LoadCatalog(cfg, validator)
	if err != nil {
		return err
	}

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	sessions, err := session.NewManager(catalog, domain.PoolRarity, cfg.SessionCacheSize, cfg.SessionTTL,
		bootstrap.RollerOptions(cfg)...)
	if err != nil {
		storage.Close()
		return err
	}

	svc := simulator.NewService(sessions, storage.History, validator, cfg.LootTablesPath)
	watcher := bootstrap.StartCatalogWatcher(cfg, svc)
	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		Storage:        cfg.Storage,
		DBPool:         storage.DBPool(),
	}, svc)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		Watcher: watcher,
		Storage: storage,
	})

	return serveErr
}
