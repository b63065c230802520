package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Auth struct {
		AccessTokenTTLSeconds  int64 `yaml:"access_token_ttl_seconds"`
		RefreshTokenTTLSeconds int64 `yaml:"refresh_token_ttl_seconds"`
	} `yaml:"auth"`

	// JWTSecret comes from the environment, never from the config file.
	JWTSecret string `yaml:"-"`
}

const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// ErrMissingJWTSecret is returned when JWT_SECRET is not set. The process
// must refuse to start without it; there is no fallback secret.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

// LoadConfig reads configuration from the specified YAML file and the
// environment.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	config.JWTSecret = os.Getenv("JWT_SECRET")
	if config.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return config, nil
}

// AccessTokenTTL returns the configured access-token lifetime, falling back
// to the default when the config file leaves it unset.
func (c *Config) AccessTokenTTL() time.Duration {
	if c.Auth.AccessTokenTTLSeconds > 0 {
		return time.Duration(c.Auth.AccessTokenTTLSeconds) * time.Second
	}
	return DefaultAccessTokenTTL
}

// RefreshTokenTTL returns the configured refresh-token lifetime.
func (c *Config) RefreshTokenTTL() time.Duration {
	if c.Auth.RefreshTokenTTLSeconds > 0 {
		return time.Duration(c.Auth.RefreshTokenTTLSeconds) * time.Second
	}
	return DefaultRefreshTokenTTL
}
