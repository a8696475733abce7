package config

import (
	"os"
	"strings"
)

// Default values for configuration.
const (
	DefaultLogLevel    = LogLevelInfo
	DefaultLogFormat   = LogFormatText
	DefaultMaxLineSize = 1024 * 1024
)

// Environment variable names.
const (
	EnvConfigFile = "MOSTACTIVE_CONFIG"
	EnvLogLevel   = "MOSTACTIVE_LOG_LEVEL"
	EnvLogFormat  = "MOSTACTIVE_LOG_FORMAT"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
		MaxLineSize: DefaultMaxLineSize,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = LogLevel(strings.ToLower(level))
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		c.LogFormat = LogFormat(strings.ToLower(format))
	}
}
