// Package voice appends dictated text to form fields. Recognition itself is
// delegated to an external command.
package voice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrUnsupported is returned when no recognizer is configured or installed.
var ErrUnsupported = errors.New("voice: speech input unsupported")

// Recognizer turns speech into a transcript.
type Recognizer interface {
	Recognize(ctx context.Context) (string, error)
}

// Append joins transcript onto field with a single space.
func Append(field, transcript string) string {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return field
	}
	if strings.TrimSpace(field) == "" {
		return transcript
	}
	return strings.TrimRight(field, " ") + " " + transcript
}

// Dictate runs r and returns field with the transcript appended. On error the
// field is returned unchanged alongside the error.
func Dictate(ctx context.Context, r Recognizer, field string) (string, error) {
	if r == nil {
		return field, ErrUnsupported
	}
	transcript, err := r.Recognize(ctx)
	if err != nil {
		return field, err
	}
	return Append(field, transcript), nil
}

// Command runs an external program and reads the transcript from its stdout.
type Command struct {
	Args     []string
	LookPath func(file string) (string, error)
	Output   func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewCommand returns a recognizer for args, e.g. ["whisper-dictate", "--once"].
func NewCommand(args []string) *Command {
	return &Command{
		Args:     args,
		LookPath: exec.LookPath,
		Output: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			var stderr bytes.Buffer
			cmd := exec.CommandContext(ctx, name, args...)
			cmd.Stderr = &stderr
			out, err := cmd.Output()
			if err != nil && stderr.Len() > 0 {
				err = fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
			}
			return out, err
		},
	}
}

func (c *Command) Recognize(ctx context.Context) (string, error) {
	if c == nil || len(c.Args) == 0 {
		return "", ErrUnsupported
	}
	if _, err := c.LookPath(c.Args[0]); err != nil {
		return "", fmt.Errorf("%w: %s not found", ErrUnsupported, c.Args[0])
	}
	out, err := c.Output(ctx, c.Args[0], c.Args[1:]...)
	if err != nil {
		return "", fmt.Errorf("voice: recognize: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
