package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"stockdash/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`
	DataSource struct {
		BaseURL string `yaml:"base_url"` // self-hosted data proxy; empty selects Yahoo
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	News struct {
		APIKey   string `yaml:"api_key"`
		PageSize int    `yaml:"page_size"`
	} `yaml:"news"`
	Forecast struct {
		Lookback int   `yaml:"lookback"`
		Horizon  int   `yaml:"horizon"`
		Trees    int   `yaml:"trees"`
		Seed     int64 `yaml:"seed"`
	} `yaml:"forecast"`
	Schedule struct {
		SnapshotCron string   `yaml:"snapshot_cron"`
		Watchlist    []string `yaml:"watchlist"`
		Period       string   `yaml:"period"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
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
	if v := os.Getenv("HTTP_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DATAPROXY_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATAPROXY_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("NEWS_API_KEY"); v != "" {
		cfg.News.APIKey = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SNAPSHOT_CRON"); v != "" {
		cfg.Schedule.SnapshotCron = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.News.PageSize == 0 {
		cfg.News.PageSize = 5
	}
	if cfg.Forecast.Lookback == 0 {
		cfg.Forecast.Lookback = 30
	}
	if cfg.Forecast.Horizon == 0 {
		cfg.Forecast.Horizon = 7
	}
	if cfg.Forecast.Trees == 0 {
		cfg.Forecast.Trees = 100
	}
	if cfg.Forecast.Seed == 0 {
		cfg.Forecast.Seed = 42
	}
	if cfg.Schedule.SnapshotCron == "" {
		cfg.Schedule.SnapshotCron = "0 0 22 * * 1-5"
	}
	if cfg.Schedule.Period == "" {
		cfg.Schedule.Period = "1y"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stockdash.db"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	return cfg, nil
}

// Validate checks that all required fields are consistent.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	if c.Forecast.Lookback < 21 {
		return fmt.Errorf("forecast.lookback must be at least 21 (the longest moving-average window), got %d", c.Forecast.Lookback)
	}
	if c.Forecast.Horizon < 1 {
		return fmt.Errorf("forecast.horizon must be positive, got %d", c.Forecast.Horizon)
	}
	if c.Forecast.Trees < 1 {
		return fmt.Errorf("forecast.trees must be positive, got %d", c.Forecast.Trees)
	}
	if c.News.PageSize < 1 || c.News.PageSize > 100 {
		return fmt.Errorf("news.page_size must be in 1-100, got %d", c.News.PageSize)
	}
	if !model.Period(c.Schedule.Period).Valid() {
		return fmt.Errorf("schedule.period must be one of %v, got %q", model.ValidPeriods, c.Schedule.Period)
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	return nil
}
