package utils

import "time"

// TimestampLayout is the wire format for record timestamps
const TimestampLayout = time.RFC3339Nano

// FormatTimestamp renders t in UTC using TimestampLayout
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a time string written by FormatTimestamp
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}
