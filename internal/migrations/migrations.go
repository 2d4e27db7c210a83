package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// MigrationFiles holds one directory of migrations per supported dialect.
// The migrations only create the read model; the dashboard never writes complaint rows.
//
//go:embed postgres/*.sql sqlite/*.sql
var MigrationFiles embed.FS

// Source returns the embedded migrations for a dialect ("postgres" or "sqlite").
func Source(dialect string) (fs.FS, error) {
	switch dialect {
	case "postgres", "sqlite":
		return fs.Sub(MigrationFiles, dialect)
	default:
		return nil, fmt.Errorf("no migrations for dialect %q", dialect)
	}
}

// RunMigrations executes all pending migrations against the provided database.
// If autoMigrate is false it returns before touching the database: building the migrate
// drivers already creates the version table, which a read-only store rejects.
func RunMigrations(db *sql.DB, dialect string, autoMigrate bool) error {
	if !autoMigrate {
		slog.Info("[Migrations] Auto-migration disabled, store is used as-is", "dialect", dialect)
		return nil
	}

	files, err := Source(dialect)
	if err != nil {
		return err
	}

	sourceDriver, err := iofs.New(files, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	dbDriver, err := databaseDriver(db, dialect)
	if err != nil {
		return fmt.Errorf("failed to create database driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, dialect, dbDriver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	if dirty {
		slog.Warn("[Migrations] Database is in dirty state - migration was interrupted",
			"version", version,
			"action", "attempting automatic recovery",
		)

		// Every migration is idempotent DDL, so forcing the recorded version and re-running Up is safe.
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to recover dirty migration state at version %d: %w", version, err)
		}
		slog.Info("[Migrations] Recovered dirty migration state", "version", version)
	}

	slog.Info("[Migrations] Running database migrations", "dialect", dialect, "current_version", version)

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("[Migrations] Database schema is up to date", "version", version)
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get updated migration version: %w", err)
	}

	slog.Info("[Migrations] Database migrations completed successfully",
		"from_version", version,
		"to_version", newVersion,
	)
	return nil
}

func databaseDriver(db *sql.DB, dialect string) (database.Driver, error) {
	if dialect == "sqlite" {
		return sqlite.WithInstance(db, &sqlite.Config{})
	}
	return postgres.WithInstance(db, &postgres.Config{})
}
