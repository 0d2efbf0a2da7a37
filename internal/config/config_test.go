package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "https://query1.finance.yahoo.com", cfg.Provider.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, 14, cfg.Indicators.RSIPeriod)
	assert.Equal(t, 4, cfg.Portfolio.MaxConcurrent)
	assert.Equal(t, 15*time.Second, cfg.Portfolio.FetchTimeout)
	assert.Equal(t, "0 */15 9-15 * * 1-5", cfg.Schedule.RefreshCron)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
log_level: debug
provider:
  base_url: https://example.test
  timeout: 5s
indicators:
  rsi_period: 21
portfolio:
  symbols:
    - TCS.NS
    - INFY.NS
  max_concurrent: 8
database:
  sqlite_path: /tmp/tracker.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://example.test", cfg.Provider.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, 21, cfg.Indicators.RSIPeriod)
	assert.Equal(t, []string{"TCS.NS", "INFY.NS"}, cfg.Portfolio.Symbols)
	assert.Equal(t, 8, cfg.Portfolio.MaxConcurrent)
	assert.Equal(t, "/tmp/tracker.db", cfg.Database.SQLitePath)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TRACKER_LOG_LEVEL", "warn")
	t.Setenv("TRACKER_PROVIDER_URL", "https://proxyquote.test")
	t.Setenv("TRACKER_PORTFOLIO", "tcs, infy , ")
	t.Setenv("TRACKER_SQLITE_PATH", "/var/lib/tracker.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "https://proxyquote.test", cfg.Provider.BaseURL)
	assert.Equal(t, []string{"tcs", "infy"}, cfg.Portfolio.Symbols)
	assert.Equal(t, "/var/lib/tracker.db", cfg.Database.SQLitePath)
}

func TestLoadProxyFallback(t *testing.T) {
	t.Setenv("TRACKER_PROXY", "")
	t.Setenv("HTTPS_PROXY", "http://proxy.corp:3128")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://proxy.corp:3128", cfg.Provider.Proxy)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	cfg.Indicators.RSIPeriod = -1
	assert.Error(t, cfg.Validate())

	cfg.Indicators.RSIPeriod = 14
	cfg.Provider.BaseURL = ""
	assert.Error(t, cfg.Validate())
}
