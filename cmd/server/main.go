package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/JonMunkholm/procurement/internal/config"
	"github.com/JonMunkholm/procurement/internal/core"
	_ "github.com/JonMunkholm/procurement/internal/core/views" // Register all views
	"github.com/JonMunkholm/procurement/internal/logging"
	"github.com/JonMunkholm/procurement/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_max_conns", cfg.Database.MaxConns,
		"fetch_max_concurrent", cfg.Fetch.MaxConcurrent,
		"session_ttl", cfg.Session.TTL.String(),
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	catalog, err := core.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		slog.Error("failed to load view catalog", "path", cfg.Catalog.Path, "error", err)
		os.Exit(1)
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		slog.Error("failed to parse database URL", "error", err)
		os.Exit(1)
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

	ctx := context.Background()
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		slog.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	if u, err := url.Parse(cfg.Database.URL); err == nil {
		slog.Info("connected to database", "name", strings.TrimPrefix(u.Path, "/"))
	} else {
		slog.Info("connected to database")
	}

	service := core.NewService(core.NewPGSource(pool, cfg.Table.RowLimit), core.Options{
		DefaultPageSize:      cfg.Table.DefaultPageSize,
		PageSizes:            cfg.Table.PageSizes,
		SessionTTL:           cfg.Session.TTL,
		MaxSessions:          cfg.Session.Max,
		MaxConcurrentFetches: cfg.Fetch.MaxConcurrent,
		FetchWait:            cfg.Fetch.MaxWaitTime,
		FetchTimeout:         cfg.Fetch.Timeout,
		Catalog:              catalog,
	})

	slog.Info("views registered", "count", core.ViewCount())
	for _, v := range service.ListViews() {
		slog.Debug("view", "key", v.Key, "group", v.Group, "server_side", v.ServerSide)
	}

	server := web.NewServer(service, cfg)

	jobCtx, cancelJobs := context.WithCancel(context.Background())
	go service.StartSessionSweeper(jobCtx, cfg.Session.SweepInterval)

	// Graceful shutdown
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")
		cancelJobs()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}

		// Let in-flight fetches finish before the pool closes
		if status := service.FetchStatus(); status.Active > 0 {
			slog.Info("waiting for fetches to complete", "active", status.Active)
			if err := service.WaitForFetches(shutdownCtx); err != nil {
				slog.Warn("fetches did not complete in time", "error", err)
			}
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	<-stopped
	slog.Info("server stopped")
}
