package kernel

import (
	"strings"
	"time"
)

// TimestampLayout is the canonical minute-precision layout used in reports.
const TimestampLayout = "2006-01-02 15:04"

// timestampLayouts are the accepted input forms, tried in order.
var timestampLayouts = []string{
	TimestampLayout,
	"2006/01/02 15:04",
}

// ParseTimestamp parses s against the accepted layouts, first success wins.
// Returns false for empty input or when no layout matches.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// FormatTimestamp renders t in the canonical layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
