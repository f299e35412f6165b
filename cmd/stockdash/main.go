package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"stockdash/internal/collector"
	"stockdash/internal/config"
	"stockdash/internal/dashboard"
	"stockdash/internal/forecast"
	"stockdash/internal/news"
	"stockdash/internal/notifier"
	"stockdash/internal/recorder"
	"stockdash/internal/util"
)

var (
	cfgPath string
	console bool
)

func main() {
	root := &cobra.Command{
		Use:          "stockdash",
		Short:        "Stock dashboard backend: quotes, indicators, forecasts, news sentiment",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "configs/config.yaml", "path to config file")
	root.PersistentFlags().BoolVar(&console, "console", false, "human-readable log output")

	root.AddCommand(serveCmd(), analyzeCmd(), snapshotCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads, validates, and applies the config, then initialises
// logging from it.
func loadConfig() (*config.Config, error) {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	util.SetupLogging(cfg.Logging.Level, console)
	return cfg, nil
}

func buildFetcher(cfg *config.Config) collector.Fetcher {
	if cfg.DataSource.BaseURL != "" {
		return collector.NewDataProxyFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	}
	return collector.NewYahooFetcher(cfg.Proxy)
}

func buildRecorder(cfg *config.Config) recorder.Recorder {
	if cfg.Database.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Database.SQLitePath).Msg("sqlite recorder unavailable, using noop")
		return recorder.NewNoopRecorder()
	}
	return sr
}

func buildService(cfg *config.Config) *dashboard.Service {
	fetcher := buildFetcher(cfg)
	log.Info().Str("source", fetcher.Name()).Msg("data source selected")

	engine := &forecast.Engine{
		Lookback: cfg.Forecast.Lookback,
		Horizon:  cfg.Forecast.Horizon,
		NumTrees: cfg.Forecast.Trees,
		Seed:     cfg.Forecast.Seed,
	}

	var newsClient *news.Client
	if cfg.News.APIKey != "" {
		newsClient = news.NewClient(cfg.News.APIKey, cfg.News.PageSize)
	}

	return dashboard.NewService(fetcher, engine, newsClient, buildRecorder(cfg))
}

func buildNotifier(cfg *config.Config) *notifier.TelegramNotifier {
	return notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
}
