package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration parsed from environment variables.
type Config struct {
	DBHost string `env:"DB_HOST"`
	DBPort string `env:"DB_PORT" envDefault:"5432"`
	DBUser string `env:"DB_USER"`
	DBPass string `env:"DB_PASS"`
	DBName string `env:"DB_NAME"`

	RedisEndpoint string `env:"REDIS_ENDPOINT"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret           string `env:"JWT_SECRET" envDefault:"secret-key"`
	IdentityProviderURL string `env:"IDENTITY_PROVIDER_URL"`

	BackendURL  string `env:"BACKEND_URL" envDefault:":8080"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"*"`

	AccessLogPath string `env:"ACCESS_LOG_PATH" envDefault:"access.log"`
	DBLogPath     string `env:"DB_LOG_PATH" envDefault:"db.log"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// DSN assembles the postgres connection string.
func (c *Config) DSN() string {
	if c.DBHost == "" {
		return ""
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName)
}

// TestConfig mirrors Config for the e2e database, driven by *_TEST variables.
type TestConfig struct {
	DBHost string `env:"DB_HOST_TEST"`
	DBPort string `env:"DB_PORT_TEST" envDefault:"5432"`
	DBUser string `env:"DB_USER_TEST"`
	DBPass string `env:"DB_PASS_TEST"`
	DBName string `env:"DB_NAME_TEST"`
}

func LoadTest() (*TestConfig, error) {
	cfg := &TestConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse test config: %w", err)
	}
	return cfg, nil
}

func (c *TestConfig) DSN() string {
	if c.DBHost == "" {
		return ""
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName)
}
