package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"FoodHubMetrics/internal/source"
)

// Config holds all application configuration.
type Config struct {
	Generator struct {
		Seed              uint64 `yaml:"seed"`
		DefaultWindowDays int    `yaml:"default_window_days"`
		MaxWindowDays     int    `yaml:"max_window_days"`
	} `yaml:"generator"`
	DataSources []string `yaml:"data_sources"`
	Schedule    struct {
		SnapshotCron string `yaml:"snapshot_cron"`
		ExportCron   string `yaml:"export_cron"`
	} `yaml:"schedule"`
	Export struct {
		Dir string `yaml:"dir"`
	} `yaml:"export"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Timezone string `yaml:"timezone"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error; defaults fill whatever is unset. The default
// window is preset so an explicit 0 (a single-day window) survives.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Generator.DefaultWindowDays = 30

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}
	if v := os.Getenv("GENERATOR_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse GENERATOR_SEED: %w", err)
		}
		cfg.Generator.Seed = seed
	}
	if v := os.Getenv("CRON_SNAPSHOT"); v != "" {
		cfg.Schedule.SnapshotCron = v
	}
	if v := os.Getenv("CRON_EXPORT"); v != "" {
		cfg.Schedule.ExportCron = v
	}
	if v := os.Getenv("DASHBOARD_TZ"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("DEFAULT_WINDOW_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse DEFAULT_WINDOW_DAYS: %w", err)
		}
		cfg.Generator.DefaultWindowDays = days
	}

	// Defaults
	if cfg.Generator.MaxWindowDays == 0 {
		cfg.Generator.MaxWindowDays = 365
	}
	if len(cfg.DataSources) == 0 {
		for _, info := range source.List() {
			cfg.DataSources = append(cfg.DataSources, string(info.ID))
		}
	}
	if cfg.Schedule.SnapshotCron == "" {
		cfg.Schedule.SnapshotCron = "0 0 * * * *"
	}
	if cfg.Schedule.ExportCron == "" {
		cfg.Schedule.ExportCron = "0 30 6 * * *"
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "data/exports"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/foodhub_metrics.db"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Generator.DefaultWindowDays < 0 {
		return fmt.Errorf("generator.default_window_days must not be negative")
	}
	if c.Generator.MaxWindowDays <= 0 {
		return fmt.Errorf("generator.max_window_days must be positive")
	}
	if c.Generator.DefaultWindowDays > c.Generator.MaxWindowDays {
		return fmt.Errorf("generator.default_window_days %d exceeds max_window_days %d",
			c.Generator.DefaultWindowDays, c.Generator.MaxWindowDays)
	}
	for _, ds := range c.DataSources {
		if _, ok := source.Parse(ds); !ok {
			return fmt.Errorf("data_sources: unknown data source %q", ds)
		}
	}
	if c.Export.Dir == "" {
		return fmt.Errorf("export.dir is required")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured dashboard timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
