// Package logging builds the diagnostic logger. Diagnostics are a side
// channel: they go to the writer given here (stderr in the CLI), never to the
// result stream.
package logging

import (
	"io"
	"log/slog"

	"github.com/ccollicutt/mostactive/pkg/config"
)

// New returns a logger writing to w at the configured level and format.
func New(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: Level(cfg.LogLevel)}

	var handler slog.Handler
	switch cfg.LogFormat {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Level maps a configured level name to its slog level. Unknown names map
// to info.
func Level(level config.LogLevel) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

