package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	corecfg "github.com/cxinsights/cx-dashboard/internal/core/config"
	"github.com/cxinsights/cx-dashboard/internal/core/storage/sqlstore"
	"github.com/cxinsights/cx-dashboard/internal/dashboard"
	"github.com/cxinsights/cx-dashboard/internal/layout"
	"github.com/cxinsights/cx-dashboard/internal/migrations"
	"github.com/cxinsights/cx-dashboard/internal/render"
	"github.com/cxinsights/cx-dashboard/internal/server"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "cxdash.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(*configPath); err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}

func run(configPath string) error {
	// 1. Load Configuration
	cfg, err := corecfg.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	slog.Info("Loaded config",
		"database", cfg.Database.Type,
		"auto_migrate", cfg.Database.AutoMigrate,
		"default_range", cfg.Dashboard.DefaultDateFrom+".."+cfg.Dashboard.DefaultDateTo,
		"session_capacity", cfg.Dashboard.SessionCapacity,
	)

	// 2. Initialize Storage
	dialect, err := sqlstore.DialectFor(cfg.Database.Type)
	if err != nil {
		return err
	}
	dsn := cfg.Database.DSN
	if !cfg.Database.AutoMigrate {
		// Without migrations nothing needs write access to the store.
		dsn = dialect.ReadOnlyDSN(dsn)
	}
	db, err := sqlstore.Open(dialect, dsn, sqlstore.Options{
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// 2.1. Run Database Migrations (opt-in; the store is read-only otherwise)
	if cfg.Database.AutoMigrate {
		if err := migrations.RunMigrations(db, dialect.Name, true); err != nil {
			db.Close()
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
	}

	store := sqlstore.NewAdapter(db, dialect, cfg.Metrics.Rules())
	defer store.Close()

	// The complaints table must exist before the first render, migrated or not.
	if err := store.ValidateSchema(context.Background()); err != nil {
		return err
	}

	// 3. Load Dashboard Layout
	dashLayout, err := layout.Load(cfg.Dashboard.LayoutPath)
	if err != nil {
		return err
	}

	// 4. Initialize Dashboard (sessions, janitor, service)
	sessions := dashboard.NewSessionStore(cfg.Dashboard.SessionCapacity)
	janitor := dashboard.NewJanitor(sessions, cfg.Dashboard.SweepInterval, cfg.Dashboard.SessionIdleTTL)

	dashboardSvc := dashboard.NewService(store, sessions, dashboard.Options{
		Defaults:      cfg.Dashboard.DefaultSelection(),
		TablePageSize: cfg.Dashboard.TablePageSize,
		QueryTimeout:  cfg.Database.QueryTimeout,
		Layout:        dashLayout,
		Charts: render.Options{
			Width:  cfg.Charts.Width,
			Height: cfg.Charts.Height,
		},
	})

	// 5. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), store, cfg.Server.Mode)
	srv.Sessions = sessions
	dashboardSvc.RegisterRoutes(srv.Engine)

	// 6. Start Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return janitor.Start(gctx)
	})
	g.Go(func() error {
		// HTTP server blocks until the context is cancelled.
		return srv.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
