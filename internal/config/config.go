package config

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

// DefaultPasswordHash is the SHA-256 digest the server falls back to when
// ADMIN_PASSWORD_HASH is not set. Operators are expected to override it.
const DefaultPasswordHash = "d7e0462a864001404c9e3bd1fa559b1e5701fca134bf918315a644f450987ad9"

type Config struct {
	Port                int    `env:"PORT" envDefault:"5000"`
	DatabasePath        string `env:"BLOG_DB_PATH" envDefault:"blog.db"`
	SessionHours        int    `env:"BLOG_SESSION_HOURS" envDefault:"12"`
	AdminUsername       string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPasswordHash   string `env:"ADMIN_PASSWORD_HASH"`
	StaticDir           string `env:"STATIC_DIR" envDefault:"static"`
	LogLevel            string `env:"LOG_LEVEL" envDefault:"info"`
	SessionSweepMinutes int    `env:"SESSION_SWEEP_MINUTES" envDefault:"0"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionHours) * time.Hour
}

func (c *Config) SessionSweepInterval() time.Duration {
	return time.Duration(c.SessionSweepMinutes) * time.Minute
}

func (c *Config) Validate() error {
	if c.SessionHours <= 0 {
		return fmt.Errorf("BLOG_SESSION_HOURS must be positive, got %d", c.SessionHours)
	}

	if c.AdminPasswordHash == DefaultPasswordHash {
		log.Warn().Msg("ADMIN_PASSWORD_HASH is not set: using the built-in default digest")
	} else if !isBcryptHash(c.AdminPasswordHash) && !isHexSHA256(c.AdminPasswordHash) {
		return fmt.Errorf("ADMIN_PASSWORD_HASH must be a bcrypt hash or a hex SHA-256 digest (generate with: go run scripts/hash-password.go <password>)")
	}

	if strings.TrimSpace(c.AdminUsername) == "" {
		return fmt.Errorf("ADMIN_USERNAME must not be empty")
	}

	return nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}

func isHexSHA256(s string) bool {
	if len(s) != 64 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.AdminPasswordHash == "" {
		cfg.AdminPasswordHash = DefaultPasswordHash
	}
	return &cfg, nil
}
