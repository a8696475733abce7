// Package config provides configuration loading and validation for mostactive.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// LogLevel is the minimum severity written to the diagnostic log
	// (debug, info, warn, error).
	LogLevel LogLevel `yaml:"log_level"`

	// LogFormat selects the diagnostic log encoding (text, json).
	LogFormat LogFormat `yaml:"log_format"`

	// MaxLineSize is the longest line, in bytes, accepted from a cookie log.
	MaxLineSize int `yaml:"max_line_size"`
}

// LogLevel names a diagnostic log severity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat names a diagnostic log encoding.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)
