package entity

import (
	"strings"
	"time"
)

const (
	// DueLayout is the form layout of a task due date.
	DueLayout = "2006-01-02T15:04"
	// DayLayout keys habit history.
	DayLayout = "2006-01-02"
)

var dueLayouts = []string{
	DueLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	DayLayout,
}

// ParseDue parses a due string. Zoneless layouts are read in loc; RFC 3339
// values carry their own zone. Empty or unparsable input has no due time.
func ParseDue(v string, loc *time.Location) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, true
	}
	for _, layout := range dueLayouts {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDue renders t in the form layout.
func FormatDue(t time.Time) string {
	return t.Format(DueLayout)
}

// DayKey is the history key for the local calendar day of t.
func DayKey(t time.Time) string {
	return t.Local().Format(DayLayout)
}
