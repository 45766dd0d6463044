package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/RamezHany/test-form-1-lod-logo-main/internal/config"
	"github.com/RamezHany/test-form-1-lod-logo-main/internal/core"
	"github.com/RamezHany/test-form-1-lod-logo-main/internal/filehost"
	"github.com/RamezHany/test-form-1-lod-logo-main/internal/logging"
	"github.com/RamezHany/test-form-1-lod-logo-main/internal/sheets"
	"github.com/RamezHany/test-form-1-lod-logo-main/internal/web"
	"github.com/joho/godotenv"
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
		"store_backend", cfg.Store.Backend,
		"filehost_backend", cfg.FileHost.Backend,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	ctx := context.Background()

	var store sheets.RowStore
	switch cfg.Store.Backend {
	case "sheets":
		client, err := sheets.NewClient(ctx, cfg.Store.CredentialsFile, cfg.Store.SpreadsheetID)
		if err != nil {
			slog.Error("failed to create sheets client", "error", err)
			os.Exit(1)
		}
		store = client
	case "memory":
		store = sheets.NewMemory()
	}

	var files filehost.Host
	switch cfg.FileHost.Backend {
	case "github":
		files = filehost.NewGitHub(ctx, cfg.FileHost.Token, cfg.FileHost.Owner, cfg.FileHost.Repo, cfg.FileHost.Branch)
	case "memory":
		files = filehost.NewMemory()
	}

	service := core.NewService(store, files, core.Options{
		CompaniesSheet: cfg.Store.CompaniesSheet,
		PublicBaseURL:  cfg.Server.PublicBaseURL,
	})

	// Make sure the company directory sheet exists before serving traffic.
	if err := service.Init(ctx); err != nil {
		slog.Error("failed to initialize company directory", "error", err)
		os.Exit(1)
	}

	server := web.NewServer(service, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
