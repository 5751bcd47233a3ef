package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StoreBackend selects where the session token is persisted.
type StoreBackend string

const (
	// StoreFile keeps the token in a local file (default).
	StoreFile StoreBackend = "file"
	// StoreRedis keeps the token in Redis, for shared desk terminals.
	StoreRedis StoreBackend = "redis"
	// StoreMemory keeps the token in process memory only; the session does
	// not survive a restart. Useful for tests and one-shot scripting.
	StoreMemory StoreBackend = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler for StoreBackend.
func (s *StoreBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "file", "redis", "memory":
		*s = StoreBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid StoreBackend: %q (valid options: file, redis, memory)", v)
	}
}

// RedisConfig describes the Redis token slot (used when Store=redis).
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB"       envDefault:"0"`
	Key      string `env:"KEY"      envDefault:"rentaride:token"`
}

// SessionConfig groups session persistence configuration.
type SessionConfig struct {
	// Store selects the durable token slot.
	Store StoreBackend `env:"STORE" envDefault:"file"`

	// TokenPath is the token file location (used when Store=file).
	// Defaults to ~/.rentaride/token.json, resolved in Sanitize.
	TokenPath string `env:"TOKEN_PATH"`

	// Redis configuration (used when Store=redis).
	Redis RedisConfig `envPrefix:"REDIS_"`
}

// Sanitize applies guardrails to session configuration.
func (c *SessionConfig) Sanitize() {
	if c.Store == "" {
		c.Store = StoreFile
	}
	if c.TokenPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		c.TokenPath = filepath.Join(home, ".rentaride", "token.json")
	}
	if c.Redis.Key == "" {
		c.Redis.Key = "rentaride:token"
	}
}
