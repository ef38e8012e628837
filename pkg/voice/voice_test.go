package voice

import (
	"context"
	"errors"
	"testing"
)

type staticRecognizer struct {
	text string
	err  error
}

func (s staticRecognizer) Recognize(context.Context) (string, error) {
	return s.text, s.err
}

func TestAppend(t *testing.T) {
	tests := map[string]struct {
		field, transcript, want string
	}{
		"empty field":      {"", "buy milk", "buy milk"},
		"space joined":     {"buy", "milk", "buy milk"},
		"trailing space":   {"buy ", "milk", "buy milk"},
		"empty transcript": {"buy", "  ", "buy"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Append(tc.field, tc.transcript); got != tc.want {
				t.Fatalf("Append(%q, %q) = %q, want %q", tc.field, tc.transcript, got, tc.want)
			}
		})
	}
}

func TestDictateLeavesFieldOnError(t *testing.T) {
	boom := errors.New("no microphone")
	got, err := Dictate(context.Background(), staticRecognizer{err: boom}, "draft")
	if !errors.Is(err, boom) || got != "draft" {
		t.Fatalf("expected untouched field and error, got %q, %v", got, err)
	}

	got, err = Dictate(context.Background(), nil, "draft")
	if !errors.Is(err, ErrUnsupported) || got != "draft" {
		t.Fatalf("expected unsupported, got %q, %v", got, err)
	}

	got, err = Dictate(context.Background(), staticRecognizer{text: "and eggs"}, "milk")
	if err != nil || got != "milk and eggs" {
		t.Fatalf("unexpected dictation %q, %v", got, err)
	}
}

func TestCommandRecognizer(t *testing.T) {
	c := &Command{
		Args:     []string{"dictate", "--once"},
		LookPath: func(file string) (string, error) { return "/bin/" + file, nil },
		Output: func(_ context.Context, name string, args ...string) ([]byte, error) {
			if name != "dictate" || len(args) != 1 || args[0] != "--once" {
				t.Fatalf("unexpected invocation %s %v", name, args)
			}
			return []byte("hello world\n"), nil
		},
	}
	got, err := c.Recognize(context.Background())
	if err != nil || got != "hello world" {
		t.Fatalf("unexpected transcript %q, %v", got, err)
	}
}

func TestCommandRecognizerUnsupported(t *testing.T) {
	if _, err := NewCommand(nil).Recognize(context.Background()); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected unsupported for empty command, got %v", err)
	}
	c := &Command{
		Args:     []string{"missing"},
		LookPath: func(string) (string, error) { return "", errors.New("not found") },
	}
	if _, err := c.Recognize(context.Background()); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected unsupported for missing binary, got %v", err)
	}
}
