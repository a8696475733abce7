package parser

import "errors"

// Error conditions reported by validation and the analysis pipeline.
// Callers match them with errors.Is; messages are wrapped with context.
var (
	// ErrInvalidArgument reports bad or missing command-line values.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidFormat reports a malformed date or a row with the wrong
	// number of columns.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidHeader reports a missing or mismatched CSV header. It is
	// fatal for the whole run.
	ErrInvalidHeader = errors.New("invalid CSV header")

	// ErrEmptyField reports a row whose cookie or timestamp is blank.
	ErrEmptyField = errors.New("empty field")

	// ErrFileNotFound reports an input path that does not exist or cannot
	// be accessed.
	ErrFileNotFound = errors.New("file not found")
)
