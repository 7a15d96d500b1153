package service

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = ".env"

// Session store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Content source backends.
const (
	ContentStatic = "static"
	ContentFile   = "file"
	ContentSQLite = "sqlite"
)

// developmentSecret is only accepted outside production.
const developmentSecret = "development-secret"

type Config struct {
	Environment string `mapstructure:"ENVIRONMENT" validate:"required"`
	LogLevel    string `mapstructure:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	Port        string `mapstructure:"PORT" validate:"required,numeric"`
	BaseURL     string `mapstructure:"BASE_URL" validate:"required,url"`

	SessionSecret string        `mapstructure:"SESSION_SECRET" validate:"required,min=8"`
	SessionStore  string        `mapstructure:"SESSION_STORE" validate:"oneof=memory redis"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL" validate:"gt=0"`

	RedisAddr     string `mapstructure:"REDIS_ADDR" validate:"required_if=SessionStore redis"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB" validate:"gte=0"`

	ContentSource       string        `mapstructure:"CONTENT_SOURCE" validate:"oneof=static file sqlite"`
	ContentPath         string        `mapstructure:"CONTENT_PATH" validate:"required_if=ContentSource file"`
	ContentPollInterval time.Duration `mapstructure:"CONTENT_POLL_INTERVAL" validate:"gt=0"`
	ContentReloadDelay  time.Duration `mapstructure:"CONTENT_RELOAD_DELAY" validate:"gte=0"`
	DBPath              string        `mapstructure:"DB_PATH" validate:"required_if=ContentSource sqlite"`

	RollbarToken string `mapstructure:"ROLLBAR_TOKEN"`
	// SignInRate is the sustained number of sign-in attempts allowed per
	// client per second.
	SignInRate float64 `mapstructure:"SIGN_IN_RATE" validate:"gt=0"`
}

var configKeys = []string{
	"ENVIRONMENT", "LOG_LEVEL", "PORT", "BASE_URL",
	"SESSION_SECRET", "SESSION_STORE", "SESSION_TTL",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"CONTENT_SOURCE", "CONTENT_PATH", "CONTENT_POLL_INTERVAL", "CONTENT_RELOAD_DELAY", "DB_PATH",
	"ROLLBAR_TOKEN", "SIGN_IN_RATE",
}

// LoadConfig reads the configuration from the environment, filling unset
// variables from a .env file when one exists.
func LoadConfig() (*Config, error) {
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, val := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, val)
			}
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	for _, k := range configKeys {
		_ = v.BindEnv(k)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("PORT", "8000")
	v.SetDefault("BASE_URL", "http://localhost:8000")
	v.SetDefault("SESSION_SECRET", developmentSecret)
	v.SetDefault("SESSION_STORE", StoreMemory)
	v.SetDefault("SESSION_TTL", 7*24*time.Hour)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CONTENT_SOURCE", ContentStatic)
	v.SetDefault("CONTENT_PATH", "./content/site.yaml")
	v.SetDefault("CONTENT_POLL_INTERVAL", 2*time.Second)
	v.SetDefault("CONTENT_RELOAD_DELAY", 500*time.Millisecond)
	v.SetDefault("DB_PATH", "./db/academy.db")
	v.SetDefault("ROLLBAR_TOKEN", "")
	v.SetDefault("SIGN_IN_RATE", 1.0)
}

// Validate checks the struct rules and the production-only constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.IsProduction() && c.SessionSecret == developmentSecret {
		return errors.New("invalid config: SESSION_SECRET must be set in production")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
