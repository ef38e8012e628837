package focus

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/focus"
	"tableflip.dev/daybook/pkg/notify"
	"tableflip.dev/daybook/pkg/timeutil"
)

// Focus runs a countdown in the terminal and notifies when it ends.
type Focus struct {
	Duration time.Duration
	Notifier notify.Notifier
	Out      io.Writer

	// Tick is the refresh period; it defaults to one second.
	Tick time.Duration
	Now  func() time.Time
}

func (f *Focus) Do(ctx context.Context) error {
	out := f.Out
	if out == nil {
		out = color.Output
	}
	now := f.Now
	if now == nil {
		now = time.Now
	}
	period := f.Tick
	if period <= 0 {
		period = time.Second
	}

	s := focus.New(f.Duration)
	gen := s.Start(now())
	clock := color.New(color.Bold)
	_, _ = clock.Fprintf(out, "\rfocus %s ", timeutil.FormatClock(s.Remaining(now())))

	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.Reset()
			_, _ = fmt.Fprintln(out, "\rfocus cancelled      ")
			return nil
		case <-ticker.C:
			t := now()
			if s.Tick(gen, t) {
				_, _ = fmt.Fprintln(out, "\rfocus done           ")
				if f.Notifier == nil {
					return nil
				}
				return f.Notifier.Notify(ctx, notify.Notification{
					Title: "Focus session complete",
					Body:  fmt.Sprintf("%s of focus finished. Take a break.", timeutil.FormatDuration(s.Duration())),
				})
			}
			_, _ = clock.Fprintf(out, "\rfocus %s ", timeutil.FormatClock(s.Remaining(t)))
		}
	}
}
