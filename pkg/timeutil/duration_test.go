package timeutil

import (
	"testing"
	"time"
)

func TestParseDurationFallback(t *testing.T) {
	dur, label, err := ParseDuration("", "25m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 25*time.Minute {
		t.Fatalf("expected 25m, got %v", dur)
	}
	if label != "25m" {
		t.Fatalf("expected label 25m, got %s", label)
	}
}

func TestParseDurationComposite(t *testing.T) {
	dur, label, err := ParseDuration("1h 30min", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 90 * time.Minute
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1h30m" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseDurationInvalid(t *testing.T) {
	for _, in := range []string{"noop", "0m", "5 fortnights"} {
		if _, _, err := ParseDuration(in, ""); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
	if _, _, err := ParseDuration("", ""); err == nil {
		t.Fatalf("expected error without input or fallback")
	}
}

func TestFormatDuration(t *testing.T) {
	if got := FormatDuration(0); got != "0s" {
		t.Fatalf("expected 0s, got %s", got)
	}
	if got := FormatDuration(8*24*time.Hour + 5*time.Second); got != "1w1d5s" {
		t.Fatalf("unexpected format %s", got)
	}
}

func TestFormatClock(t *testing.T) {
	tests := map[time.Duration]string{
		0:                       "00:00",
		-time.Second:            "00:00",
		25 * time.Minute:        "25:00",
		1500 * time.Millisecond: "00:02",
		time.Hour + 2*time.Minute + 3*time.Second: "1:02:03",
	}
	for in, want := range tests {
		if got := FormatClock(in); got != want {
			t.Fatalf("FormatClock(%v) = %s, want %s", in, got, want)
		}
	}
}

func TestParseDurationAliases(t *testing.T) {
	tests := map[string]string{
		"2 weeks 3hrs": "2w3h",
		"90s":          "1m30s",
		"1D":           "1d",
		"7days":        "1w",
	}
	for in, want := range tests {
		_, got, err := ParseDuration(in, "")
		if err != nil {
			t.Fatalf("ParseDuration(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseDuration(%q) label = %s, want %s", in, got, want)
		}
	}
}
