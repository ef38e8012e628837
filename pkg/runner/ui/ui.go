package ui

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/notify"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/tui"
	"tableflip.dev/daybook/pkg/voice"
)

// UI runs the full-screen daybook.
type UI struct {
	Controller *app.Controller
	Center     *notify.Center
	Voice      voice.Recognizer

	ReminderInterval time.Duration
	FocusDuration    time.Duration

	Log *zap.Logger
}

func (u *UI) Do(ctx context.Context) error {
	c := u.Controller
	if c == nil {
		return app.ErrNoPersistence
	}
	if u.Log == nil {
		u.Log = zap.NewNop()
	}

	// Until the user picks a theme, follow the terminal.
	if _, err := c.Storage.Read(store.KeyTheme); errors.Is(err, store.ErrNotFound) {
		c.State.Theme = tui.DetectTheme()
		u.Log.Debug("theme detected", zap.String("theme", string(c.State.Theme)))
	}

	return tui.Run(ctx, tui.Options{
		Controller:       c,
		Center:           u.Center,
		Voice:            u.Voice,
		ReminderInterval: u.ReminderInterval,
		FocusDuration:    u.FocusDuration,
		Log:              u.Log,
	})
}
