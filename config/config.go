package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration for the lender-match service.
type Config struct {
	ServerAddr   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	CatalogURL      string
	CatalogCacheTTL time.Duration

	// RedisAddr selects the cache backend; empty means in-memory.
	RedisAddr string

	RateLimitBurst  int
	RateLimitWindow time.Duration
}

// Load reads configuration from the optional file at path, environment
// variables prefixed LENDERMATCH_, and built-in defaults, in that order of
// precedence (file < env).
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("catalog.url", "http://localhost:4000/api/lender-products")
	v.SetDefault("catalog.cache_ttl", "5m")
	v.SetDefault("redis.addr", "")
	v.SetDefault("rate_limit.burst", 60)
	v.SetDefault("rate_limit.window", "1m")

	v.SetEnvPrefix("LENDERMATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return Config{
		ServerAddr:      v.GetString("server.addr"),
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		IdleTimeout:     v.GetDuration("server.idle_timeout"),
		CatalogURL:      v.GetString("catalog.url"),
		CatalogCacheTTL: v.GetDuration("catalog.cache_ttl"),
		RedisAddr:       v.GetString("redis.addr"),
		RateLimitBurst:  v.GetInt("rate_limit.burst"),
		RateLimitWindow: v.GetDuration("rate_limit.window"),
	}, nil
}
