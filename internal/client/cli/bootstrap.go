package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/iudanet/gophnotes/internal/client/api"
	"github.com/iudanet/gophnotes/internal/client/config"
	"github.com/iudanet/gophnotes/internal/client/connectivity"
	"github.com/iudanet/gophnotes/internal/client/iocli"
	"github.com/iudanet/gophnotes/internal/client/notes"
	"github.com/iudanet/gophnotes/internal/client/storage/boltdb"
	syncsvc "github.com/iudanet/gophnotes/internal/client/sync"
)

// Bootstrap returns the Builder used by the real client. Logs go to logOut.
func Bootstrap(logOut io.Writer) Builder {
	return func(ctx context.Context, opts *RootOptions, stdio iocli.IO) (*Cli, func(), error) {
		cfg, err := resolveConfig(opts)
		if err != nil {
			return nil, nil, err
		}

		level, err := config.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, nil, err
		}
		logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

		// Каталог базы может еще не существовать при первом запуске
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o700); err != nil {
			return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
		}

		local, err := boltdb.New(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}

		apiClient := api.NewClient(cfg.ServerURL)
		monitor := connectivity.NewMonitor(apiClient, cfg.Connectivity.ProbeInterval, cfg.Connectivity.ProbeTimeout, logger)

		syncService := syncsvc.NewService(apiClient, local, local, local, monitor, syncsvc.Options{
			Concurrency:    cfg.Sync.Concurrency,
			ExplicitCreate: cfg.Sync.ExplicitCreate,
		}, logger)

		store, err := notes.New(ctx, local, local, syncService, notes.WithLogger(logger))
		if err != nil {
			_ = local.Close()
			return nil, nil, err
		}

		wireConnectivity(monitor, store, logger)

		c := New(stdio, store, syncService, monitor,
			WithFormat(opts.Format),
			WithSyncOnStart(cfg.Sync.OnStart),
			WithLogger(logger),
		)

		cleanup := func() {
			_ = store.Close()
			if err := local.Close(); err != nil {
				logger.Error("Failed to close database", "error", err)
			}
		}
		return c, cleanup, nil
	}
}

// wireConnectivity зеркалит состояние сети в снимки Store и запускает
// проход синхронизации на переходе offline -> online
func wireConnectivity(monitor *connectivity.Monitor, store *notes.Store, logger *slog.Logger) {
	monitor.OnChange(store.SetOnline)
	monitor.OnOnline(func(ctx context.Context) {
		logger.Info("Server is reachable again, starting sync")
		if _, err := store.RequestSync(ctx); err != nil && !errors.Is(err, syncsvc.ErrSyncSkipped) {
			logger.Warn("Sync after reconnect failed", "error", err)
		}
	})
}

// resolveConfig читает файл конфигурации и применяет флаги поверх него
func resolveConfig(opts *RootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	if v := strings.TrimSpace(opts.ServerURL); v != "" {
		cfg.ServerURL = v
	}
	if v := strings.TrimSpace(opts.DBPath); v != "" {
		path, err := config.ExpandPath(v)
		if err != nil {
			return config.Config{}, fmt.Errorf("invalid --db: %w", err)
		}
		cfg.DBPath = path
	}
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
