// Package analyzer finds the most active cookies in a cookie log.
package analyzer

import "time"

// FrequencyMap counts matching log rows per cookie identifier.
// A cookie that never matched the target date has no entry.
type FrequencyMap map[string]int

// Stats describes one pass over a cookie log.
type Stats struct {
	// LinesProcessed is the number of data lines read, excluding the header.
	LinesProcessed int

	// LinesSkipped is the number of data lines rejected as malformed.
	LinesSkipped int

	// LinesMatched is the number of valid lines that fell on the target date.
	LinesMatched int
}

// Result is the outcome of a most-active-cookie query.
type Result struct {
	// Cookies holds the most active cookie identifiers, sorted ascending.
	// Empty when no line matched the target date.
	Cookies []string

	// TargetDate is the date that was queried, as given.
	TargetDate string

	// Source is the log file that was read.
	Source string

	// Stats summarizes the pass over the log.
	Stats Stats

	// Duration is how long the query took.
	Duration time.Duration
}
