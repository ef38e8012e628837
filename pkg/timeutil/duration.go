// Package timeutil reads and writes the compact durations used for the
// reminder interval, focus sessions and report windows ("30s", "25m",
// "1w2d").
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

// unit is one token of a compact duration. The first alias is the one
// FormatDuration writes.
type unit struct {
	aliases []string
	size    time.Duration
}

// units runs from largest to smallest.
var units = []unit{
	{[]string{"w", "wk", "wks", "week", "weeks"}, 7 * day},
	{[]string{"d", "day", "days"}, day},
	{[]string{"h", "hr", "hrs", "hour", "hours"}, time.Hour},
	{[]string{"m", "min", "mins", "minute", "minutes"}, time.Minute},
	{[]string{"s", "sec", "secs", "second", "seconds"}, time.Second},
}

var segment = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)

func unitSize(name string) (time.Duration, bool) {
	for _, u := range units {
		for _, a := range u.aliases {
			if a == name {
				return u.size, true
			}
		}
	}
	return 0, false
}

// ParseDuration reads a compact duration such as "90s", "25m" or
// "1h 30min". An empty input falls back to fallback. The second result is
// the canonical spelling from FormatDuration.
func ParseDuration(input, fallback string) (time.Duration, string, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		s = strings.ToLower(strings.TrimSpace(fallback))
	}
	if s == "" {
		return 0, "", fmt.Errorf("duration required")
	}

	var total time.Duration
	for rest := s; rest != ""; {
		m := segment.FindStringSubmatch(rest)
		if m == nil {
			return 0, "", fmt.Errorf("invalid duration segment %q", strings.TrimSpace(rest))
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid duration value %q: %w", m[1], err)
		}
		size, ok := unitSize(m[2])
		if !ok {
			return 0, "", fmt.Errorf("unsupported duration unit %q", m[2])
		}
		total += time.Duration(n) * size
		rest = rest[len(m[0]):]
	}
	if total <= 0 {
		return 0, "", fmt.Errorf("duration must be greater than zero")
	}
	return total, FormatDuration(total), nil
}

// FormatDuration writes d with the largest units first, dropping
// sub-second remainders: 8 days and 5 seconds is "1w1d5s".
func FormatDuration(d time.Duration) string {
	var b strings.Builder
	for _, u := range units {
		if d < u.size {
			continue
		}
		n := d / u.size
		d -= n * u.size
		fmt.Fprintf(&b, "%d%s", n, u.aliases[0])
	}
	if b.Len() == 0 {
		return "0s"
	}
	return b.String()
}

// FormatClock renders a countdown as mm:ss, or h:mm:ss past an hour. Partial
// seconds round up so a running timer never shows 00:00 early.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64((d + time.Second - 1) / time.Second)
	h, m, s := secs/3600, secs%3600/60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
