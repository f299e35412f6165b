package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err, "missing file falls back to defaults")

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30, cfg.Forecast.Lookback)
	assert.Equal(t, 7, cfg.Forecast.Horizon)
	assert.Equal(t, 100, cfg.Forecast.Trees)
	assert.Equal(t, int64(42), cfg.Forecast.Seed)
	assert.Equal(t, 5, cfg.News.PageSize)
	assert.Equal(t, "1y", cfg.Schedule.Period)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
forecast:
  trees: 50
schedule:
  period: 6mo
  watchlist: [AAPL, MSFT]
`), 0o644))

	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("NEWS_API_KEY", "env-key")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port, "env beats file")
	assert.Equal(t, 50, cfg.Forecast.Trees)
	assert.Equal(t, "env-key", cfg.News.APIKey)
	assert.Equal(t, []string{"AAPL", "MSFT"}, cfg.Schedule.Watchlist)
	assert.Equal(t, "6mo", cfg.Schedule.Period)
}

func TestValidate_Rejects(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.Server.Port = -1
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Forecast.Lookback = 5
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Schedule.Period = "10y"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Telegram.BotToken = "token"
	assert.Error(t, cfg.Validate(), "chat id required with bot token")
}
