package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.False(t, cfg.IsDev)
	assert.Equal(t, "http://127.0.0.1:5000", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, StoreFile, cfg.Session.Store)
	assert.True(t, strings.HasSuffix(cfg.Session.TokenPath, filepath.Join(".rentaride", "token.json")))
	assert.Equal(t, "localhost:6379", cfg.Session.Redis.Addr)
	assert.Equal(t, "rentaride:token", cfg.Session.Redis.Key)
}

func TestAppConfig_FromEnv(t *testing.T) {
	t.Setenv("DEV", "true")
	t.Setenv("API_BASE_URL", "https://rental.example.com/")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("SESSION_REDIS_ADDR", "redis.internal:6380")
	t.Setenv("SESSION_REDIS_DB", "2")
	t.Setenv("SESSION_REDIS_KEY", "desk7:token")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.True(t, cfg.IsDev)
	// The trailing slash is stripped so path joins stay clean.
	assert.Equal(t, "https://rental.example.com", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, StoreRedis, cfg.Session.Store)
	assert.Equal(t, "redis.internal:6380", cfg.Session.Redis.Addr)
	assert.Equal(t, 2, cfg.Session.Redis.DB)
	assert.Equal(t, "desk7:token", cfg.Session.Redis.Key)
}

func TestAppConfig_InvalidStoreRejected(t *testing.T) {
	t.Setenv("SESSION_STORE", "sqlite")

	var cfg AppConfig
	err := env.Parse(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid StoreBackend")
}

func TestStoreBackend_UnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    StoreBackend
		wantErr bool
	}{
		{"file", StoreFile, false},
		{"REDIS", StoreRedis, false},
		{"Memory", StoreMemory, false},
		{"localstorage", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var s StoreBackend
			err := s.UnmarshalText([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestAPIConfig_SanitizeClampsTimeout(t *testing.T) {
	cfg := APIConfig{BaseURL: "  http://x/  ", Timeout: -1}
	cfg.Sanitize()

	assert.Equal(t, "http://x", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
}

func TestSessionConfig_SanitizeFillsDefaults(t *testing.T) {
	cfg := SessionConfig{}
	cfg.Sanitize()

	assert.Equal(t, StoreFile, cfg.Store)
	assert.NotEmpty(t, cfg.TokenPath)
	assert.Equal(t, "rentaride:token", cfg.Redis.Key)
}
