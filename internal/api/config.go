package api

import (
	"os"
	"time"

	"github.com/demoworks/surveyd/internal/logger"
)

// EnvAuthSecret is the name of the environment variable for the token
// verification secret.
const EnvAuthSecret = "SURVEYD_AUTH_SECRET"

// APIConfig configures the REST API HTTP server.
type APIConfig struct {
	// Port is the HTTP port for the API endpoints.
	// Default: 8080
	Port int `mapstructure:"port" validate:"omitempty,min=1,max=65535" yaml:"port"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body. A zero or negative value means there is no timeout.
	// Default: 10s
	ReadTimeout time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response.
	// A zero or negative value means there is no timeout.
	// Default: 10s
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled. If zero, the value of ReadTimeout is used.
	// Default: 60s
	IdleTimeout time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`

	// RequestTimeout bounds the total processing time of a single request.
	// Default: 30s
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`

	// Auth configures bearer token verification for API endpoints.
	Auth AuthConfig `mapstructure:"auth" yaml:"auth"`
}

// AuthConfig configures verification of the bearer tokens issued by the
// external identity provider.
type AuthConfig struct {
	// Secret is the HMAC key used to verify token signatures.
	// Must be at least 32 characters long.
	// Can also be set via the SURVEYD_AUTH_SECRET environment variable.
	// Environment variable takes precedence over config file.
	Secret string `mapstructure:"secret" yaml:"secret"`

	// Issuer, when set, is required to match the token's iss claim.
	Issuer string `mapstructure:"issuer" yaml:"issuer"`
}

// applyDefaults fills in zero values with sensible defaults.
func (c *APIConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 10 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 10 * time.Second
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60 * time.Second
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 30 * time.Second
	}
}

// GetAuthSecret returns the token secret, preferring the environment variable.
// Returns empty string if neither env var nor config secret is set.
// Logs a warning if the environment variable overrides a config file value.
func (c *APIConfig) GetAuthSecret() string {
	envSecret := os.Getenv(EnvAuthSecret)
	if envSecret != "" {
		if c.Auth.Secret != "" && c.Auth.Secret != envSecret {
			logger.Warn("auth secret from environment variable overrides config file value",
				"env_var", EnvAuthSecret)
		}
		return envSecret
	}
	return c.Auth.Secret
}

// HasAuthSecret returns whether a token secret is configured.
func (c *APIConfig) HasAuthSecret() bool {
	return c.GetAuthSecret() != ""
}
