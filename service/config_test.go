package service

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, StoreMemory, cfg.SessionStore)
	assert.Equal(t, ContentStatic, cfg.ContentSource)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 2*time.Second, cfg.ContentPollInterval)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SIGN_IN_RATE", "0.5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StoreRedis, cfg.SessionStore)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.InDelta(t, 0.5, cfg.SignInRate, 0.0001)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir+"/.env", "CONTENT_SOURCE=file\nCONTENT_PATH=/srv/site.yaml\n")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ContentFile, cfg.ContentSource)
	assert.Equal(t, "/srv/site.yaml", cfg.ContentPath)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment:         "test",
			Port:                "8000",
			BaseURL:             "http://localhost:8000",
			SessionSecret:       "a-long-secret",
			SessionStore:        StoreMemory,
			SessionTTL:          time.Hour,
			ContentSource:       ContentStatic,
			ContentPollInterval: time.Second,
			SignInRate:          1,
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"redis without address", func(c *Config) { c.SessionStore = StoreRedis }},
		{"unknown store", func(c *Config) { c.SessionStore = "memcached" }},
		{"unknown content source", func(c *Config) { c.ContentSource = "s3" }},
		{"file source without path", func(c *Config) { c.ContentSource = ContentFile }},
		{"bad base url", func(c *Config) { c.BaseURL = "not a url" }},
		{"short secret", func(c *Config) { c.SessionSecret = "x" }},
		{"zero rate", func(c *Config) { c.SignInRate = 0 }},
		{"production default secret", func(c *Config) {
			c.Environment = "production"
			c.SessionSecret = developmentSecret
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := valid()
	cfg.SessionStore = StoreRedis
	var verrs validator.ValidationErrors
	require.ErrorAs(t, cfg.Validate(), &verrs)
	assert.Equal(t, "RedisAddr", verrs[0].Field())
}
