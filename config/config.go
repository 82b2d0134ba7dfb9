package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Feed      FeedConfig      `mapstructure:"feed"`
	Simulator SimulatorConfig `mapstructure:"simulator"`
	Session   SessionConfig   `mapstructure:"session"`
	Wallet    WalletConfig    `mapstructure:"wallet"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// RedisConfig configures the optional quote cache. Disabled when Enabled is
// false; the service then falls straight back to hardcoded defaults on feed
// failure.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// FeedConfig configures the CoinGecko price and chart clients.
type FeedConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	RateLimitRPS float64       `mapstructure:"rate_limit_rps"` // outbound request budget
	RateBurst    int           `mapstructure:"rate_burst"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"` // quote cache entry lifetime
}

// SimulatorConfig configures the artificial transfer delays. All three may
// be zero (tests run with instant commits).
type SimulatorConfig struct {
	PendingMin  time.Duration `mapstructure:"pending_min"`
	PendingMax  time.Duration `mapstructure:"pending_max"`
	SuccessHold time.Duration `mapstructure:"success_hold"`
}

type SessionConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// WalletConfig holds the demo wallet identity and lock credential.
type WalletConfig struct {
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"` // compared verbatim at unlock
	ReceiveAddress string `mapstructure:"receive_address"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CHW (Chronos Wallet).
// Nested keys use underscore: CHW_SERVER_PORT, CHW_WALLET_PASSWORD, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("feed.base_url", "https://api.coingecko.com/api/v3")
	v.SetDefault("feed.timeout", "10s")
	v.SetDefault("feed.poll_interval", "30s")
	v.SetDefault("feed.rate_limit_rps", 0.5)
	v.SetDefault("feed.rate_burst", 2)
	v.SetDefault("feed.cache_ttl", "5m")
	v.SetDefault("simulator.pending_min", "1500ms")
	v.SetDefault("simulator.pending_max", "2500ms")
	v.SetDefault("simulator.success_hold", "800ms")
	v.SetDefault("session.secret", "chronos-demo-secret")
	v.SetDefault("session.expiry", "12h")
	v.SetDefault("session.issuer", "chronos-wallet")
	v.SetDefault("wallet.username", "CryptoTrader47")
	v.SetDefault("wallet.password", "1234")
	v.SetDefault("wallet.receive_address", "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CHW_FEED_POLL_INTERVAL -> feed.poll_interval
	v.SetEnvPrefix("CHW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Simulator.PendingMax < cfg.Simulator.PendingMin {
		return nil, fmt.Errorf("simulator.pending_max (%s) below simulator.pending_min (%s)",
			cfg.Simulator.PendingMax, cfg.Simulator.PendingMin)
	}

	return &cfg, nil
}
