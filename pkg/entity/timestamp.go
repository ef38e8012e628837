package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ParseTime parses an RFC 3339 timestamp. Fractional seconds are accepted.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp wraps time.Time with the on-disk encoding used for entities.
type Timestamp struct {
	time.Time
}

// SameDay reports whether t and then fall on the same local calendar day.
func (t Timestamp) SameDay(then time.Time) bool {
	return DayKey(t.Time) == DayKey(then)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

// UnmarshalJSON accepts RFC 3339 strings and epoch milliseconds, which is
// what a browser export of the same data contains.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	if b[0] != '"' {
		ms, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return fmt.Errorf("entity: timestamp %s: %w", b, err)
		}
		t.Time = time.UnixMilli(ms)
		return nil
	}
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

// MarshalYAML writes the same string form as JSON so exports read alike.
func (t Timestamp) MarshalYAML() (interface{}, error) {
	if t.IsZero() {
		return "", nil
	}
	return t.String(), nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339Nano)
}
