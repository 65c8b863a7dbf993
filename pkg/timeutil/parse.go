// ABOUTME: Flexible publish-date parsing for feed timestamps
// ABOUTME: Feeds report dates in many formats; sorting needs a best-effort parse

package timeutil

import "time"

var formats = []string{
	time.RFC3339,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	time.RFC850,
	time.ANSIC,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse attempts to parse a feed timestamp in any common format.
// Returns the zero time when nothing matches.
func Parse(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
