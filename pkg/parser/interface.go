package parser

import "context"

// LineSource provides a forward-only cursor over the lines of a log.
// Implementations are not restartable and not safe for concurrent use.
type LineSource interface {
	// Next returns the next line.
	// Returns io.EOF when no more lines are available.
	Next(ctx context.Context) (Line, error)

	// Name identifies the source in error messages (usually the file path).
	Name() string

	// Close releases any resources held by the source.
	Close() error
}
