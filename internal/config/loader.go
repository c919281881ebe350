package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies HORIZON_* environment variable overrides, and
// returns the final Config. A missing file is not an error: defaults plus env
// overrides make a fully working configuration. The returned Config has NOT
// been validated; the caller should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known HORIZON_* environment variables and
// overwrites the corresponding Config fields when a variable is set (i.e. not
// empty). This lets operators inject secrets at deploy time without touching
// the TOML file.
func applyEnvOverrides(cfg *Config) {
	// ── Polymarket ──
	setStr(&cfg.Polymarket.GammaHost, "HORIZON_POLYMARKET_GAMMA_HOST")
	setStr(&cfg.Polymarket.ClobHost, "HORIZON_POLYMARKET_CLOB_HOST")
	setInt(&cfg.Polymarket.TimeoutSeconds, "HORIZON_POLYMARKET_TIMEOUT_SECONDS")
	setStr(&cfg.Polymarket.CryptoTagID, "HORIZON_POLYMARKET_CRYPTO_TAG_ID")

	// ── News ──
	setStr(&cfg.News.BaseURL, "HORIZON_NEWS_BASE_URL")
	setStr(&cfg.News.APIKey, "HORIZON_NEWS_API_KEY")
	setStr(&cfg.News.APIKey, "NEWS_API_KEY") // compatibility alias
	setStr(&cfg.News.Language, "HORIZON_NEWS_LANGUAGE")
	setInt(&cfg.News.PageSize, "HORIZON_NEWS_PAGE_SIZE")
	setInt(&cfg.News.LookbackDays, "HORIZON_NEWS_LOOKBACK_DAYS")

	// ── Completion ──
	setStr(&cfg.Completion.BaseURL, "HORIZON_COMPLETION_BASE_URL")
	setStr(&cfg.Completion.APIKey, "HORIZON_COMPLETION_API_KEY")
	setStr(&cfg.Completion.APIKey, "CLAUDE_API_KEY") // compatibility alias
	setStr(&cfg.Completion.Model, "HORIZON_COMPLETION_MODEL")
	setInt(&cfg.Completion.MaxTokens, "HORIZON_COMPLETION_MAX_TOKENS")

	// ── Wallets ──
	setStr(&cfg.Wallets.Provider, "HORIZON_WALLETS_PROVIDER")
	setInt(&cfg.Wallets.MaxWallets, "HORIZON_WALLETS_MAX_WALLETS")

	// ── Analysis ──
	setInt(&cfg.Analysis.TopOutcomes, "HORIZON_ANALYSIS_TOP_OUTCOMES")
	setInt(&cfg.Analysis.MaxOutcomes, "HORIZON_ANALYSIS_MAX_OUTCOMES")

	// ── Redis ──
	setBool(&cfg.Redis.Enabled, "HORIZON_REDIS_ENABLED")
	setStr(&cfg.Redis.Addr, "HORIZON_REDIS_ADDR")
	setStr(&cfg.Redis.Password, "HORIZON_REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "HORIZON_REDIS_DB")
	setInt(&cfg.Redis.PoolSize, "HORIZON_REDIS_POOL_SIZE")
	setInt(&cfg.Redis.MaxRetries, "HORIZON_REDIS_MAX_RETRIES")
	setBool(&cfg.Redis.TLSEnabled, "HORIZON_REDIS_TLS_ENABLED")
	setInt(&cfg.Redis.NewsTTLMinutes, "HORIZON_REDIS_NEWS_TTL_MINUTES")
	setInt(&cfg.Redis.UpstreamPerMin, "HORIZON_REDIS_UPSTREAM_PER_MIN")

	// ── Server ──
	setInt(&cfg.Server.Port, "HORIZON_SERVER_PORT")
	setStringSlice(&cfg.Server.CORSOrigins, "HORIZON_SERVER_CORS_ORIGINS")

	// ── Top-level ──
	setStr(&cfg.LogLevel, "HORIZON_LOG_LEVEL")
}

// ---------------------------------------------------------------------------
// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.
// ---------------------------------------------------------------------------

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setStringSlice(dst *[]string, key string) {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		cleaned := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				cleaned = append(cleaned, p)
			}
		}
		if len(cleaned) > 0 {
			*dst = cleaned
		}
	}
}
