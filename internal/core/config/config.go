package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	v1 "github.com/cxinsights/cx-dashboard/internal/api/v1"
	"github.com/cxinsights/cx-dashboard/internal/core/filter"
	"github.com/cxinsights/cx-dashboard/internal/core/storage"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "CXDASH_"

// Config represents the top-level application config.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Charts    ChartsConfig    `koanf:"charts"`
}

type ServerConfig struct {
	Port int    `koanf:"port"`
	Host string `koanf:"host"`
	Mode string `koanf:"mode"` // debug | release
}

type DatabaseConfig struct {
	Type         string        `koanf:"type"` // sqlite | postgres
	DSN          string        `koanf:"dsn"`
	MaxOpenConns int           `koanf:"max_open_conns"`
	MaxIdleConns int           `koanf:"max_idle_conns"`
	AutoMigrate  bool          `koanf:"auto_migrate"`
	QueryTimeout time.Duration `koanf:"query_timeout"`
}

type DashboardConfig struct {
	DefaultDateFrom string        `koanf:"default_date_from"`
	DefaultDateTo   string        `koanf:"default_date_to"`
	SessionCapacity int           `koanf:"session_capacity"`
	SessionIdleTTL  time.Duration `koanf:"session_idle_ttl"`
	SweepInterval   time.Duration `koanf:"sweep_interval"`
	TablePageSize   int           `koanf:"table_page_size"`
	LayoutPath      string        `koanf:"layout_path"` // empty uses the embedded layout
}

// MetricsConfig names the statuses that feed the derived KPIs.
type MetricsConfig struct {
	EscalatedStatus string   `koanf:"escalated_status"`
	SLAStatuses     []string `koanf:"sla_statuses"`
}

type ChartsConfig struct {
	Width  int `koanf:"width"`
	Height int `koanf:"height"`
}

// DefaultSelection is the selection every new session starts from.
func (c DashboardConfig) DefaultSelection() filter.Selection {
	// Validate has already checked both dates.
	from, _ := v1.ParseDate(c.DefaultDateFrom)
	to, _ := v1.ParseDate(c.DefaultDateTo)
	return filter.Selection{DateFrom: from, DateTo: to}.Normalize()
}

func (c MetricsConfig) Rules() storage.MetricRules {
	return storage.MetricRules{
		EscalatedStatus: c.EscalatedStatus,
		SLAStatuses:     append([]string(nil), c.SLAStatuses...),
	}
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be > 0")
	}
	if c.Database.MaxIdleConns <= 0 {
		return fmt.Errorf("database.max_idle_conns must be > 0")
	}
	switch c.Database.Type {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database.type %q (must be sqlite or postgres)", c.Database.Type)
	}
	if c.Database.QueryTimeout < 0 {
		return fmt.Errorf("database.query_timeout must be >= 0")
	}

	from, err := v1.ParseDate(c.Dashboard.DefaultDateFrom)
	if err != nil {
		return fmt.Errorf("invalid dashboard.default_date_from: %w", err)
	}
	to, err := v1.ParseDate(c.Dashboard.DefaultDateTo)
	if err != nil {
		return fmt.Errorf("invalid dashboard.default_date_to: %w", err)
	}
	if from.After(to) {
		return fmt.Errorf("dashboard.default_date_from %s is after default_date_to %s", from, to)
	}
	if c.Dashboard.SessionCapacity <= 0 {
		return fmt.Errorf("dashboard.session_capacity must be > 0")
	}
	if c.Dashboard.SessionIdleTTL <= 0 {
		return fmt.Errorf("dashboard.session_idle_ttl must be > 0")
	}
	if c.Dashboard.SweepInterval <= 0 {
		return fmt.Errorf("dashboard.sweep_interval must be > 0")
	}
	if c.Dashboard.TablePageSize <= 0 {
		return fmt.Errorf("dashboard.table_page_size must be > 0")
	}
	if c.Dashboard.LayoutPath != "" {
		if _, err := os.Stat(c.Dashboard.LayoutPath); err != nil {
			return fmt.Errorf("dashboard.layout_path %q is not accessible: %w", c.Dashboard.LayoutPath, err)
		}
	}

	if strings.TrimSpace(c.Metrics.EscalatedStatus) == "" {
		return fmt.Errorf("metrics.escalated_status is required")
	}

	if c.Charts.Width < 200 || c.Charts.Height < 150 {
		return fmt.Errorf("charts size %dx%d is too small (min 200x150)", c.Charts.Width, c.Charts.Height)
	}

	return nil
}

// Load reads .env (if present), then defaults, the YAML file and CXDASH_* env vars, in that order.
func Load(configPath string) (*Config, error) {
	switch err := godotenv.Load(); {
	case err == nil:
		slog.Info("[Config] Loaded environment from .env")
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":                 8080,
		"server.host":                 "0.0.0.0",
		"server.mode":                 "release",
		"database.type":               "sqlite",
		"database.dsn":                "complaints.db",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     10,
		"database.auto_migrate":       false,
		"database.query_timeout":      "10s",
		"dashboard.default_date_from": "2025-01-01",
		"dashboard.default_date_to":   "2025-12-31",
		"dashboard.session_capacity":  1000,
		"dashboard.session_idle_ttl":  "30m",
		"dashboard.sweep_interval":    "1m",
		"dashboard.table_page_size":   50,
		"dashboard.layout_path":       "",
		"metrics.escalated_status":    "escalated",
		"metrics.sla_statuses":        []string{"resolved", "escalated"},
		"charts.width":                800,
		"charts.height":               400,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Database.Type = strings.ToLower(strings.TrimSpace(cfg.Database.Type))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
