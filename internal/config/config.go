// Package config defines the top-level configuration for the Horizon analysis
// backend and provides validation helpers.
package config

import (
	"fmt"
	"strings"
)

// Config is the root configuration structure. Fields are populated from a TOML
// file and then optionally overridden by HORIZON_* environment variables.
type Config struct {
	Polymarket PolymarketConfig `toml:"polymarket"`
	News       NewsConfig       `toml:"news"`
	Completion CompletionConfig `toml:"completion"`
	Wallets    WalletsConfig    `toml:"wallets"`
	Analysis   AnalysisConfig   `toml:"analysis"`
	Redis      RedisConfig      `toml:"redis"`
	Server     ServerConfig     `toml:"server"`
	LogLevel   string           `toml:"log_level"`
}

// PolymarketConfig holds market-data provider endpoints.
type PolymarketConfig struct {
	GammaHost      string `toml:"gamma_host"`
	ClobHost       string `toml:"clob_host"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	CryptoTagID    string `toml:"crypto_tag_id"`
}

// NewsConfig holds the news-search provider parameters. The API key normally
// arrives via HORIZON_NEWS_API_KEY or a .env file rather than the TOML file.
type NewsConfig struct {
	BaseURL      string `toml:"base_url"`
	APIKey       string `toml:"api_key"`
	Language     string `toml:"language"`
	PageSize     int    `toml:"page_size"`
	LookbackDays int    `toml:"lookback_days"`
}

// CompletionConfig holds the text-completion service parameters. An empty
// APIKey is valid: sentiment and summaries degrade to neutral results.
type CompletionConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	Model     string `toml:"model"`
	MaxTokens int    `toml:"max_tokens"`
}

// WalletsConfig selects the smart-wallet insight provider.
type WalletsConfig struct {
	Provider   string `toml:"provider"` // "synthetic" or "live"
	MaxWallets int    `toml:"max_wallets"`
}

// AnalysisConfig holds orchestrator parameters.
type AnalysisConfig struct {
	TopOutcomes int `toml:"top_outcomes"`
	MaxOutcomes int `toml:"max_outcomes"`
}

// RedisConfig holds connection parameters for the optional news cache and
// upstream rate limiter. Disabled by default; the service is fully functional
// without Redis.
type RedisConfig struct {
	Enabled        bool   `toml:"enabled"`
	Addr           string `toml:"addr"`
	Password       string `toml:"password"`
	DB             int    `toml:"db"`
	PoolSize       int    `toml:"pool_size"`
	MaxRetries     int    `toml:"max_retries"`
	TLSEnabled     bool   `toml:"tls_enabled"`
	NewsTTLMinutes int    `toml:"news_ttl_minutes"`
	UpstreamPerMin int    `toml:"upstream_per_min"`
}

// ServerConfig holds HTTP server parameters.
type ServerConfig struct {
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// Defaults returns a Config populated with reasonable default values.
// These match the values in config.example.toml.
func Defaults() Config {
	return Config{
		Polymarket: PolymarketConfig{
			GammaHost:      "https://gamma-api.polymarket.com",
			ClobHost:       "https://clob.polymarket.com",
			TimeoutSeconds: 10,
			CryptoTagID:    "21",
		},
		News: NewsConfig{
			BaseURL:      "https://newsapi.org/v2",
			Language:     "en",
			PageSize:     20,
			LookbackDays: 30,
		},
		Completion: CompletionConfig{
			BaseURL:   "https://api.anthropic.com",
			Model:     "claude-3-haiku-20240307",
			MaxTokens: 512,
		},
		Wallets: WalletsConfig{
			Provider:   "synthetic",
			MaxWallets: 4,
		},
		Analysis: AnalysisConfig{
			TopOutcomes: 3,
			MaxOutcomes: 10,
		},
		Redis: RedisConfig{
			Enabled:        false,
			Addr:           "localhost:6379",
			DB:             0,
			PoolSize:       20,
			MaxRetries:     3,
			NewsTTLMinutes: 10,
			UpstreamPerMin: 60,
		},
		Server: ServerConfig{
			Port:        8000,
			CORSOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		LogLevel: "info",
	}
}

// validLogLevels enumerates the accepted values for Config.LogLevel.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validWalletProviders enumerates the accepted values for Wallets.Provider.
var validWalletProviders = map[string]bool{
	"synthetic": true,
	"live":      true,
}

// Validate checks Config for obviously invalid or missing values and returns a
// combined error describing every problem found.
func (c *Config) Validate() error {
	var errs []string

	// LogLevel
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Sprintf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel))
	}

	// Polymarket endpoints
	if c.Polymarket.GammaHost == "" {
		errs = append(errs, "polymarket: gamma_host must not be empty")
	}
	if c.Polymarket.ClobHost == "" {
		errs = append(errs, "polymarket: clob_host must not be empty")
	}
	if c.Polymarket.TimeoutSeconds <= 0 {
		errs = append(errs, "polymarket: timeout_seconds must be > 0")
	}

	// News
	if c.News.BaseURL == "" {
		errs = append(errs, "news: base_url must not be empty")
	}
	if c.News.PageSize <= 0 {
		errs = append(errs, "news: page_size must be > 0")
	}
	if c.News.LookbackDays <= 0 {
		errs = append(errs, "news: lookback_days must be > 0")
	}

	// Completion
	if c.Completion.BaseURL == "" {
		errs = append(errs, "completion: base_url must not be empty")
	}
	if c.Completion.MaxTokens <= 0 {
		errs = append(errs, "completion: max_tokens must be > 0")
	}

	// Wallets
	if !validWalletProviders[strings.ToLower(c.Wallets.Provider)] {
		errs = append(errs, fmt.Sprintf("wallets: unknown provider %q (valid: synthetic, live)", c.Wallets.Provider))
	}
	if c.Wallets.MaxWallets <= 0 {
		errs = append(errs, "wallets: max_wallets must be > 0")
	}

	// Analysis
	if c.Analysis.TopOutcomes <= 0 {
		errs = append(errs, "analysis: top_outcomes must be > 0")
	}
	if c.Analysis.MaxOutcomes < c.Analysis.TopOutcomes {
		errs = append(errs, "analysis: max_outcomes must be >= top_outcomes")
	}

	// Redis (only when enabled)
	if c.Redis.Enabled {
		if c.Redis.Addr == "" {
			errs = append(errs, "redis: addr must not be empty when enabled")
		}
		if c.Redis.PoolSize < 1 {
			errs = append(errs, "redis: pool_size must be >= 1")
		}
	}

	// Server
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server: port must be 1-65535, got %d", c.Server.Port))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
