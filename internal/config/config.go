package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Provider struct {
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
		Proxy   string        `yaml:"proxy"`
	} `yaml:"provider"`
	Indicators struct {
		RSIPeriod int `yaml:"rsi_period"`
	} `yaml:"indicators"`
	Portfolio struct {
		Symbols       []string      `yaml:"symbols"`
		MaxConcurrent int           `yaml:"max_concurrent"`
		FetchTimeout  time.Duration `yaml:"fetch_timeout"`
	} `yaml:"portfolio"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; overrides and defaults still apply.
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
	if v := os.Getenv("TRACKER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TRACKER_PROVIDER_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("TRACKER_PROXY"); v != "" {
		cfg.Provider.Proxy = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" && cfg.Provider.Proxy == "" {
		cfg.Provider.Proxy = v
	}
	if v := os.Getenv("TRACKER_PORTFOLIO"); v != "" {
		cfg.Portfolio.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("TRACKER_REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("TRACKER_SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = "https://query1.finance.yahoo.com"
	}
	if cfg.Provider.Timeout == 0 {
		cfg.Provider.Timeout = 30 * time.Second
	}
	if cfg.Indicators.RSIPeriod == 0 {
		cfg.Indicators.RSIPeriod = 14
	}
	if cfg.Portfolio.MaxConcurrent == 0 {
		cfg.Portfolio.MaxConcurrent = 4
	}
	if cfg.Portfolio.FetchTimeout == 0 {
		cfg.Portfolio.FetchTimeout = 15 * time.Second
	}
	if cfg.Schedule.RefreshCron == "" {
		// Every 15 minutes during IST trading hours, Monday-Friday.
		cfg.Schedule.RefreshCron = "0 */15 9-15 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that all required fields are usable.
func (c *Config) Validate() error {
	if c.Provider.BaseURL == "" {
		return fmt.Errorf("provider.base_url is required")
	}
	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("provider.timeout must be positive")
	}
	if c.Indicators.RSIPeriod <= 0 {
		return fmt.Errorf("indicators.rsi_period must be positive")
	}
	if c.Portfolio.MaxConcurrent <= 0 {
		return fmt.Errorf("portfolio.max_concurrent must be positive")
	}
	if c.Portfolio.FetchTimeout <= 0 {
		return fmt.Errorf("portfolio.fetch_timeout must be positive")
	}
	return nil
}

func splitSymbols(raw string) []string {
	parts := strings.Split(raw, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}
