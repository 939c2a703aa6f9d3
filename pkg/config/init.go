package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// InitConfig creates a configuration file at the default location.
//
// The generated file contains a commented sample configuration with all
// defaults applied and a freshly generated auth secret.
//
// Returns the path of the created file. Fails if a config file already
// exists unless force is true.
func InitConfig(force bool) (string, error) {
	configPath := GetDefaultConfigPath()

	if err := InitConfigToPath(configPath, force); err != nil {
		return "", err
	}

	return configPath, nil
}

// InitConfigToPath creates a configuration file at the specified path.
// Fails if the file already exists unless force is true.
func InitConfigToPath(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s\n\n"+
			"Use --force to overwrite the existing configuration", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	secret, err := generateAuthSecret()
	if err != nil {
		return fmt.Errorf("failed to generate auth secret: %w", err)
	}

	content := sampleConfig(secret)

	// 0600: the file contains the auth signing secret.
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// generateAuthSecret returns a random 64-character hex string suitable as
// an HMAC signing key.
func generateAuthSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// sampleConfig renders the commented sample configuration file.
// The output must stay loadable by Load and valid under Validate.
func sampleConfig(secret string) string {
	return fmt.Sprintf(`# Surveyd Configuration File
#
# Demolition survey backend configuration.
# Values can be overridden with SURVEYD_* environment variables,
# e.g. SURVEYD_LOGGING_LEVEL=DEBUG or SURVEYD_API_PORT=9090.

logging:
  # Minimum log level: DEBUG, INFO, WARN, ERROR
  level: "INFO"
  # Output format: text or json
  format: "text"
  # Where to write logs: stdout, stderr, or a file path
  output: "stdout"

telemetry:
  # OpenTelemetry distributed tracing (opt-in)
  enabled: false
  # OTLP gRPC collector endpoint
  endpoint: "localhost:4317"
  insecure: true
  sample_rate: 1.0

metrics:
  # Prometheus scrape endpoint (/metrics) and request instrumentation
  enabled: true

# Maximum time to wait for in-flight requests during shutdown
shutdown_timeout: "30s"

database:
  # Database backend: sqlite or postgres
  type: "sqlite"
  sqlite:
    path: "surveyd.db"
  # postgres:
  #   host: "localhost"
  #   port: 5432
  #   user: "surveyd"
  #   password: ""
  #   database: "surveyd"
  #   ssl_mode: "disable"

api:
  port: 8080
  read_timeout: "10s"
  write_timeout: "10s"
  idle_timeout: "60s"
  request_timeout: "30s"
  auth:
    # HMAC key used to verify bearer tokens issued by the identity provider.
    # Can also be set via SURVEYD_AUTH_SECRET (takes precedence).
    secret: "%s"
    # When set, tokens must carry a matching iss claim.
    # issuer: "https://auth.example.com"
`, secret)
}
