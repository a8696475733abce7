package config

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// FromEnvironment loads the file named by MOSTACTIVE_CONFIG, or returns the
// defaults with environment overrides applied when it is unset.
func FromEnvironment(ctx context.Context) (*Config, error) {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return Load(ctx, path)
	}

	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and fills in empty fields.
func Validate(cfg *Config) error {
	switch cfg.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	case "":
		cfg.LogLevel = DefaultLogLevel
	default:
		return fmt.Errorf("log_level: invalid level %q (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case LogFormatText, LogFormatJSON:
	case "":
		cfg.LogFormat = DefaultLogFormat
	default:
		return fmt.Errorf("log_format: invalid format %q (must be text or json)", cfg.LogFormat)
	}

	if cfg.MaxLineSize < 0 {
		return fmt.Errorf("max_line_size: must be >= 0, got %d", cfg.MaxLineSize)
	}
	if cfg.MaxLineSize == 0 {
		cfg.MaxLineSize = DefaultMaxLineSize
	}

	return nil
}
