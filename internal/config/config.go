package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"MarketBoard/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Feed struct {
		BaseURL        string `yaml:"base_url"`
		DataDir        string `yaml:"data_dir"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"feed"`
	Board struct {
		Indices       []string `yaml:"indices"`
		Thematic      []string `yaml:"thematic"`
		Sectors       []string `yaml:"sectors"`
		Funds         []string `yaml:"funds"`
		DefaultPeriod string   `yaml:"default_period"`
		Theme         string   `yaml:"theme"`
		Width         int      `yaml:"width"`
	} `yaml:"board"`
	Watch struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"watch"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

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
	if v := os.Getenv("MARKETBOARD_BASE_URL"); v != "" {
		cfg.Feed.BaseURL = v
	}
	if v := os.Getenv("MARKETBOARD_DATA_DIR"); v != "" {
		cfg.Feed.DataDir = v
	}
	if v := os.Getenv("MARKETBOARD_THEME"); v != "" {
		cfg.Board.Theme = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Watch.RefreshCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults mirror the sync process's symbol universe.
	if cfg.Feed.TimeoutSeconds == 0 {
		cfg.Feed.TimeoutSeconds = 30
	}
	if len(cfg.Board.Indices) == 0 {
		cfg.Board.Indices = []string{"SPY", "QQQ", "DIA", "VIX", "HSI", "N225", "GSPC", "IXIC", "BTC-USD"}
	}
	if len(cfg.Board.Thematic) == 0 {
		cfg.Board.Thematic = []string{"GLD", "ROBO", "SMH", "IWM"}
	}
	if len(cfg.Board.Sectors) == 0 {
		cfg.Board.Sectors = []string{"XLK", "XLC", "XLY", "XLP", "XLV", "XLF", "XLE", "XLI", "XLB", "XLU", "VNQ"}
	}
	if len(cfg.Board.Funds) == 0 {
		cfg.Board.Funds = []string{"VFIAX", "VMMXX", "SWVXX", "FXNAX"}
	}
	if cfg.Board.DefaultPeriod == "" {
		cfg.Board.DefaultPeriod = "3M"
	}
	if cfg.Board.Theme == "" {
		cfg.Board.Theme = "dark"
	}
	if cfg.Board.Width == 0 {
		cfg.Board.Width = 72
	}
	if cfg.Watch.RefreshCron == "" {
		// Every 15 minutes, matching the sync cadence upstream.
		cfg.Watch.RefreshCron = "0 */15 * * * *"
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Feed.BaseURL == "" && c.Feed.DataDir == "" {
		return fmt.Errorf("one of feed.base_url or feed.data_dir is required")
	}
	if c.Feed.TimeoutSeconds <= 0 {
		return fmt.Errorf("feed.timeout_seconds must be positive")
	}
	if c.Board.Theme != "dark" && c.Board.Theme != "light" {
		return fmt.Errorf("board.theme must be dark or light, got %q", c.Board.Theme)
	}
	return nil
}

// Period resolves the configured default period token.
func (c *Config) Period() model.Period {
	return model.ParsePeriod(c.Board.DefaultPeriod)
}
