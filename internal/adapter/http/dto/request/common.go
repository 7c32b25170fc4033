package request

import (
	"strings"
	"time"
)

// parseDate accepts RFC3339 or plain YYYY-MM-DD; anything else yields the
// zero time and the use case fills in "now".
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
