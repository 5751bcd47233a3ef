package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config files for
// the available variables:
//   - api.go: backend API configuration
//   - session.go: session/token-store configuration
type AppConfig struct {
	// IsDev enables debug logging and verbose request traces.
	IsDev bool `env:"DEV" envDefault:"false"`

	// API is the backend endpoint configuration.
	API APIConfig `envPrefix:"API_"`

	// Session is the token-store configuration.
	Session SessionConfig `envPrefix:"SESSION_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// Call after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Session.Sanitize()
}
