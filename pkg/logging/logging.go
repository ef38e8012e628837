// Package logging builds the zap logger shared by the CLI and the UI.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction.
type Options struct {
	Level   string
	File    string
	Verbose bool
	// Quiet discards output when no file is configured. The terminal UI owns
	// the screen, so it must not log to stderr.
	Quiet bool
}

// New builds a logger. Errors in configuration fall back to a no-op logger
// rather than aborting the command.
func New(o Options) (*zap.Logger, error) {
	if o.File == "" && o.Quiet {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if o.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(o.Level))); err != nil {
			return zap.NewNop(), fmt.Errorf("logging: level %q: %w", o.Level, err)
		}
	}
	if o.Verbose {
		level = zapcore.DebugLevel
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.DisableStacktrace = true
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	if o.File != "" {
		if err := os.MkdirAll(filepath.Dir(o.File), 0o755); err != nil {
			return zap.NewNop(), fmt.Errorf("logging: ensure log dir: %w", err)
		}
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		config.OutputPaths = []string{o.File}
		config.ErrorOutputPaths = []string{o.File}
	}

	logger, err := config.Build()
	if err != nil {
		return zap.NewNop(), fmt.Errorf("logging: build: %w", err)
	}
	return logger, nil
}
