// Package report renders provider responses as the human-readable text
// returned by the weather tools. All placeholder substitution for missing
// provider fields happens here.
package report

import (
	"encoding/json"
	"strconv"
	"time"
)

// Placeholders for missing values
const (
	NotAvailable = "N/A"
	Unknown      = "Unknown"
)

// Time layouts
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
	ClockLayout     = "15:04"
)

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func numberOr(n *json.Number, fallback string) string {
	if n == nil {
		return fallback
	}
	return n.String()
}

// fixed formats f with the given number of decimals, or N/A when f is nil
func fixed(f *float64, decimals int) string {
	if f == nil {
		return NotAvailable
	}
	return strconv.FormatFloat(*f, 'f', decimals, 64)
}

func unixOr(ts *int64, loc *time.Location, fallback string) string {
	if ts == nil {
		return fallback
	}
	return time.Unix(*ts, 0).In(loc).Format(TimestampLayout)
}

func locationOrLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
