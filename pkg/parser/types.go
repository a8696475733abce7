// Package parser provides cookie log reading and line validation.
package parser

// Header is the exact first line every cookie log must carry.
const Header = "cookie,timestamp"

// LogLine is a validated data row from a cookie log.
type LogLine struct {
	// CookieID is the trimmed cookie identifier. Never empty.
	CookieID string

	// Timestamp is the trimmed timestamp text, e.g. 2018-12-09T14:19:00+00:00.
	// Its shape is not checked beyond being non-empty.
	Timestamp string
}

// Line is a raw line read from a source, before validation.
type Line struct {
	// Text is the line content without its terminator.
	Text string

	// Num is the 1-based line number in the source.
	Num int
}
