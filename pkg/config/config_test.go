package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	content := `
log_level: debug
log_format: json
max_line_size: 4096
`
	path := writeTempFile(t, "config.yaml", content)
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LogLevel != LogLevelDebug {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.LogFormat != LogFormatJSON {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
	if cfg.MaxLineSize != 4096 {
		t.Errorf("MaxLineSize = %d, want 4096", cfg.MaxLineSize)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "log_format: json\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.MaxLineSize != DefaultMaxLineSize {
		t.Errorf("MaxLineSize = %d, want %d", cfg.MaxLineSize, DefaultMaxLineSize)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(context.Background(), "/nonexistent/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	content := `invalid: yaml: content: [`
	path := writeTempFile(t, "invalid.yaml", content)
	_, err := Load(context.Background(), path)
	if err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "log_level: info\nlog_format: text\n")
	t.Setenv(EnvLogLevel, "WARN")
	t.Setenv(EnvLogFormat, "json")

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != LogLevelWarn {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.LogFormat != LogFormatJSON {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
}

func TestFromEnvironment(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(EnvConfigFile, "")
		cfg, err := FromEnvironment(context.Background())
		if err != nil {
			t.Fatalf("FromEnvironment() error = %v", err)
		}
		if cfg.LogLevel != DefaultLogLevel || cfg.LogFormat != DefaultLogFormat {
			t.Errorf("FromEnvironment() = %+v, want defaults", cfg)
		}
	})

	t.Run("config file", func(t *testing.T) {
		path := writeTempFile(t, "config.yaml", "log_level: error\n")
		t.Setenv(EnvConfigFile, path)
		cfg, err := FromEnvironment(context.Background())
		if err != nil {
			t.Fatalf("FromEnvironment() error = %v", err)
		}
		if cfg.LogLevel != LogLevelError {
			t.Errorf("LogLevel = %q, want error", cfg.LogLevel)
		}
	})

	t.Run("missing config file", func(t *testing.T) {
		t.Setenv(EnvConfigFile, "/nonexistent/config.yaml")
		if _, err := FromEnvironment(context.Background()); err == nil {
			t.Error("FromEnvironment() expected error for missing file")
		}
	})

	t.Run("bad env level", func(t *testing.T) {
		t.Setenv(EnvConfigFile, "")
		t.Setenv(EnvLogLevel, "loud")
		if _, err := FromEnvironment(context.Background()); err == nil {
			t.Error("FromEnvironment() expected error for invalid level")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", *DefaultConfig(), false},
		{"empty fields filled", Config{}, false},
		{"invalid level", Config{LogLevel: "trace"}, true},
		{"invalid format", Config{LogFormat: "xml"}, true},
		{"negative line size", Config{MaxLineSize: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := Validate(&cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				if cfg.LogLevel == "" || cfg.LogFormat == "" || cfg.MaxLineSize == 0 {
					t.Errorf("Validate() left empty fields: %+v", cfg)
				}
			}
		})
	}
}
