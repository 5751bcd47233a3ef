package config

import (
	"strings"
	"time"
)

// APIConfig describes the external rental backend.
type APIConfig struct {
	// BaseURL is the backend root. The trailing slash is stripped.
	BaseURL string `env:"BASE_URL" envDefault:"http://127.0.0.1:5000"`

	// Timeout bounds every backend call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to API configuration.
func (c *APIConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
}
