package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"mesa-attribution/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Attribution holds engine defaults. Environment variables prefixed
	// with ATTRIBUTION_ will populate this struct.
	Attribution configs.Attribution `envPrefix:"ATTRIBUTION_"`

	// Telemetry configures OTLP export. Environment variables prefixed with
	// OTEL_ will populate this struct.
	Telemetry configs.Telemetry `envPrefix:"OTEL_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing or validation fails, an error is returned. All fields are loaded
// with their specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Attribution.Validate(); err != nil {
		return cfg, fmt.Errorf("attribution config: %w", err)
	}
	return cfg, nil
}
