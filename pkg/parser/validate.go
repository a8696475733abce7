package parser

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the Go time layout of a target date.
const DateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateFilename trims the filename and rejects it if nothing is left.
func ValidateFilename(filename string) (string, error) {
	trimmed := strings.TrimSpace(filename)
	if trimmed == "" {
		return "", fmt.Errorf("%w: filename cannot be empty", ErrInvalidArgument)
	}
	return trimmed, nil
}

// ParseDate checks that date is a real calendar date written as YYYY-MM-DD.
// The input is returned unchanged on success.
func ParseDate(date string) (string, error) {
	if !datePattern.MatchString(date) {
		return "", fmt.Errorf("%w: date %q, expected YYYY-MM-DD", ErrInvalidFormat, date)
	}
	if _, err := time.ParseInLocation(DateLayout, date, time.UTC); err != nil {
		return "", fmt.Errorf("%w: date %q is not a calendar date", ErrInvalidFormat, date)
	}
	return date, nil
}

// ValidateHeader checks the first line of a cookie log.
func ValidateHeader(line string) error {
	if line != Header {
		return fmt.Errorf("%w: expected %q, got %q", ErrInvalidHeader, Header, line)
	}
	return nil
}

// ParseLine splits a data row into its cookie and timestamp.
// lineNum is only used in error messages.
func ParseLine(line string, lineNum int) (LogLine, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return LogLine{}, fmt.Errorf("%w at line %d: expected 2 columns, got %d",
			ErrInvalidFormat, lineNum, len(parts))
	}

	cookieID := strings.TrimSpace(parts[0])
	timestamp := strings.TrimSpace(parts[1])

	if cookieID == "" {
		return LogLine{}, fmt.Errorf("%w at line %d: empty cookie ID", ErrEmptyField, lineNum)
	}
	if timestamp == "" {
		return LogLine{}, fmt.Errorf("%w at line %d: empty timestamp", ErrEmptyField, lineNum)
	}

	return LogLine{CookieID: cookieID, Timestamp: timestamp}, nil
}

// IsTargetDate reports whether timestamp falls on targetDate by comparing
// the first len(DateLayout) characters. A timestamp too short to hold a date
// is logged and treated as a mismatch.
func IsTargetDate(logger *slog.Logger, timestamp, targetDate string) bool {
	if len(timestamp) < len(DateLayout) {
		logger.Warn("invalid timestamp", "timestamp", timestamp)
		return false
	}
	return timestamp[:len(DateLayout)] == targetDate
}
