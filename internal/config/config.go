// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the application configuration loaded from file plus environment.
type Config struct {
	TickerBaseURL   string `mapstructure:"ticker_base_url"`
	TickerAPIKey    string `mapstructure:"ticker_api_key"`
	BridgeBaseURL   string `mapstructure:"bridge_base_url"`
	WalletRPCURL    string `mapstructure:"wallet_rpc_url"`
	DataDir         string `mapstructure:"data_dir"`
	PriceTTLSec     int    `mapstructure:"price_ttl_sec"`
	RefreshDelaySec int    `mapstructure:"refresh_delay_sec"`
	FastFeedSec     int    `mapstructure:"fast_feed_sec"`
	DefaultChainID  int64  `mapstructure:"default_chain_id"`
	DebugLogging    bool   `mapstructure:"debug_logging"`
	LogFile         string `mapstructure:"log_file"`
}

const (
	DefaultPriceTTLSec     = 30
	DefaultRefreshDelaySec = 30
	DefaultFastFeedSec     = 5
	DefaultChainID         = 2330
	DefaultDataDir         = "data"
)

// PriceTTL returns the cache freshness window as a duration.
func (c *Config) PriceTTL() time.Duration {
	return time.Duration(c.PriceTTLSec) * time.Second
}

// RefreshDelay returns the slow feed polling interval.
func (c *Config) RefreshDelay() time.Duration {
	return time.Duration(c.RefreshDelaySec) * time.Second
}

// FastFeedDelay returns the active-pair feed polling interval.
func (c *Config) FastFeedDelay() time.Duration {
	return time.Duration(c.FastFeedSec) * time.Second
}

// LoadConfig reads and validates configuration from the given path.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := map[string]interface{}{
		"price_ttl_sec":     DefaultPriceTTLSec,
		"refresh_delay_sec": DefaultRefreshDelaySec,
		"fast_feed_sec":     DefaultFastFeedSec,
		"default_chain_id":  DefaultChainID,
		"data_dir":          DefaultDataDir,
		"log_file":          "logs/dexboard.log",
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := loadEnvironmentVariables(v, &cfg); err != nil {
		return nil, err
	}

	return &cfg, validateConfig(&cfg)
}

func validateConfig(cfg *Config) error {
	if cfg.TickerBaseURL == "" {
		return errors.New("missing ticker_base_url in configuration")
	}
	if err := validateURL(cfg.TickerBaseURL, "http"); err != nil {
		return errors.New("invalid ticker_base_url protocol")
	}
	if cfg.BridgeBaseURL != "" {
		if err := validateURL(cfg.BridgeBaseURL, "http"); err != nil {
			return errors.New("invalid bridge_base_url protocol")
		}
	}
	if cfg.WalletRPCURL != "" {
		if err := validateURL(cfg.WalletRPCURL, "http"); err != nil {
			return errors.New("invalid wallet_rpc_url protocol")
		}
	}
	return validateNumericParams(cfg)
}

func validateNumericParams(cfg *Config) error {
	if cfg.PriceTTLSec <= 0 {
		return errors.New("invalid price_ttl_sec")
	}
	if cfg.RefreshDelaySec <= 0 {
		return errors.New("invalid refresh_delay_sec")
	}
	if cfg.FastFeedSec <= 0 {
		return errors.New("invalid fast_feed_sec")
	}
	if cfg.DefaultChainID <= 0 {
		return errors.New("invalid default_chain_id")
	}
	return nil
}

func validateURL(rawURL string, protocol string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.New("invalid URL format")
	}
	if !strings.HasPrefix(parsed.Scheme, protocol) {
		return errors.New("invalid URL protocol")
	}
	return nil
}

func loadEnvironmentVariables(v *viper.Viper, cfg *Config) error {
	v.AutomaticEnv()
	v.SetEnvPrefix("DEXBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if key := v.GetString("TICKER_API_KEY"); key != "" {
		cfg.TickerAPIKey = key
	}
	if base := v.GetString("TICKER_BASE_URL"); base != "" {
		cfg.TickerBaseURL = base
	}
	if rpc := v.GetString("WALLET_RPC_URL"); rpc != "" {
		cfg.WalletRPCURL = rpc
	}
	return nil
}
