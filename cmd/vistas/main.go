package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/crystal-vistas/vistas-ops/internal/access"
	"github.com/crystal-vistas/vistas-ops/internal/charts"
	coreagg "github.com/crystal-vistas/vistas-ops/internal/core/aggregation"
	corecfg "github.com/crystal-vistas/vistas-ops/internal/core/config"
	"github.com/crystal-vistas/vistas-ops/internal/core/storage"
	"github.com/crystal-vistas/vistas-ops/internal/core/storage/memory"
	"github.com/crystal-vistas/vistas-ops/internal/core/storage/postgres"
	"github.com/crystal-vistas/vistas-ops/internal/expenses"
	"github.com/crystal-vistas/vistas-ops/internal/intake"
	"github.com/crystal-vistas/vistas-ops/internal/jobs"
	"github.com/crystal-vistas/vistas-ops/internal/migrations"
	"github.com/crystal-vistas/vistas-ops/internal/notify"
	"github.com/crystal-vistas/vistas-ops/internal/retention"
	"github.com/crystal-vistas/vistas-ops/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "vistas.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(*configPath); err != nil {
		slog.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}

// run owns every resource it opens, so deferred cleanup runs on each return path.
func run(configPath string) error {
	// 1. Load Configuration (.env first, so its values reach the env provider)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	path := configPath
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Info("Config file not found, using defaults and environment", "path", path)
		path = ""
	}

	cfg, err := corecfg.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.Info("Loaded config",
		"database", cfg.Database.Type,
		"timezone", cfg.Charts.Timezone,
		"notify", cfg.Notify.Enabled,
		"retention", cfg.Retention.Enabled)

	// 2. Initialize Storage
	store, err := openStore(cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()

	// 3. Load chart definitions
	chartRepo, err := coreagg.NewFileSystemChartRepository(cfg.Charts.ConfigDir)
	if err != nil {
		return fmt.Errorf("load chart definitions from %s: %w", cfg.Charts.ConfigDir, err)
	}

	// 4. Initialize Services
	notifier, err := newNotifier(cfg.Notify)
	if err != nil {
		return fmt.Errorf("initialize notifier: %w", err)
	}

	bodyMB := cfg.Server.MaxBodySizeMB
	accessSvc := access.NewService(store, cfg.Auth.UIDHeader, bodyMB)
	jobsSvc := jobs.NewService(store, bodyMB)
	expensesSvc := expenses.NewService(store, bodyMB)
	intakeSvc := intake.NewService(store, store, notifier, intake.ReviewPolicy{
		PublicThreshold: cfg.Reviews.PublicThreshold,
		RedirectURL:     cfg.Reviews.RedirectURL,
	}, bodyMB)
	chartsSvc := charts.NewService(chartRepo, charts.Sources{Jobs: store, Expenses: store, Quotes: store}, charts.Options{
		Location:    cfg.Charts.Location(),
		DefaultDays: cfg.Charts.DefaultDays,
		MaxDays:     cfg.Charts.MaxDays,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := accessSvc.Bootstrap(ctx, cfg.Auth.BootstrapEmployees); err != nil {
		return fmt.Errorf("bootstrap employees: %w", err)
	}

	// 5. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), store, server.Options{
		Mode:                cfg.Server.Mode,
		CORSAllowedOrigins:  cfg.Server.CORSAllowedOrigins,
		ExtraAllowedHeaders: []string{cfg.Auth.UIDHeader},
	})
	accessSvc.RegisterPublicRoutes(srv.Engine)
	intakeSvc.RegisterPublicRoutes(srv.Engine)

	employee := srv.Engine.Group("", accessSvc.RequireEmployee())
	accessSvc.RegisterRoutes(employee)
	intakeSvc.RegisterRoutes(employee)
	jobsSvc.RegisterRoutes(employee)
	expensesSvc.RegisterRoutes(employee)
	chartsSvc.RegisterRoutes(employee)

	// 6. Start background retention if enabled
	if cfg.Retention.Enabled {
		scheduler, err := retention.NewScheduler(store, cfg.Retention.Schedule, cfg.Retention.TTL())
		if err != nil {
			return fmt.Errorf("initialize retention: %w", err)
		}
		go func() {
			if err := scheduler.Start(ctx); err != nil {
				slog.Error("Retention scheduler stopped with error", "error", err)
			}
		}()
	} else {
		slog.Info("Retention scheduler disabled by config")
	}

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func openStore(cfg corecfg.DatabaseConfig) (storage.Store, error) {
	if cfg.Type == "memory" {
		slog.Warn("Using in-memory storage; data is lost on restart")
		return memory.NewStore(), nil
	}

	db, err := postgres.Open(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err != nil {
		return nil, err
	}
	if err := migrations.Run(db, cfg.AutoMigrate); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	store, err := postgres.NewStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func newNotifier(cfg corecfg.NotifyConfig) (notify.Notifier, error) {
	if !cfg.Enabled {
		return notify.LogNotifier{}, nil
	}
	return notify.NewSMTPNotifier(notify.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		To:       cfg.SMTP.To,
	})
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
