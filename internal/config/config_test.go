// =================================
// File: internal/config/config_test.go
// =================================
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "ticker_base_url: \"https://api.example.com/api/v3\"\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.PriceTTLSec)
	assert.Equal(t, 30, cfg.RefreshDelaySec)
	assert.Equal(t, 5, cfg.FastFeedSec)
	assert.Equal(t, int64(2330), cfg.DefaultChainID)
	assert.Equal(t, "data", cfg.DataDir)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
ticker_base_url: "https://api.example.com/api/v3"
price_ttl_sec: 60
refresh_delay_sec: 10
default_chain_id: 1
debug_logging: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.PriceTTLSec)
	assert.Equal(t, 10, cfg.RefreshDelaySec)
	assert.Equal(t, int64(1), cfg.DefaultChainID)
	assert.True(t, cfg.DebugLogging)
}

func TestLoadConfigMissingTickerURL(t *testing.T) {
	path := writeConfig(t, "debug_logging: true\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad protocol", "ticker_base_url: \"ftp://api.example.com\"\n"},
		{"zero ttl", "ticker_base_url: \"https://x\"\nprice_ttl_sec: 0\n"},
		{"negative delay", "ticker_base_url: \"https://x\"\nrefresh_delay_sec: -1\n"},
		{"bad chain", "ticker_base_url: \"https://x\"\ndefault_chain_id: 0\n"},
	}

	for _, tc := range cases {
		body := tc.body
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("DEXBOARD_TICKER_API_KEY", "env-key")
	path := writeConfig(t, "ticker_base_url: \"https://api.example.com/api/v3\"\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.TickerAPIKey)
}

func TestDurationHelpers(t *testing.T) {
	cfg := &Config{PriceTTLSec: 30, RefreshDelaySec: 10, FastFeedSec: 5}
	assert.Equal(t, "30s", cfg.PriceTTL().String())
	assert.Equal(t, "10s", cfg.RefreshDelay().String())
	assert.Equal(t, "5s", cfg.FastFeedDelay().String())
}
