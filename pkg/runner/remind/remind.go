package remind

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/reminder"
	"tableflip.dev/daybook/pkg/state"
)

// Remind scans for due tasks once, or keeps scanning until interrupted.
type Remind struct {
	Watch    bool
	Interval time.Duration

	Controller *app.Controller
	Log        *zap.Logger
	Out        io.Writer
}

func (r *Remind) Do(ctx context.Context) error {
	c := r.Controller
	if c == nil {
		return app.ErrNoPersistence
	}
	if r.Log == nil {
		r.Log = zap.NewNop()
	}
	out := r.Out
	if out == nil {
		out = color.Output
	}
	c.State.Tab = state.TabTasks

	fired, err := c.ScanReminders(ctx)
	if err != nil {
		return err
	}
	if !r.Watch {
		if len(fired) == 0 {
			_, _ = color.New(color.Faint).Fprintln(out, "no reminders due")
		}
		return nil
	}
	return r.watch(ctx)
}

// watch runs the scan on a single goroutine, fed by the ticker, until a
// signal arrives or ctx ends.
func (r *Remind) watch(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	ticks := make(chan time.Time)
	ticker := reminder.NewTicker(r.Log)
	ticker.Start(ctx, r.Interval, func(now time.Time) {
		select {
		case ticks <- now:
		case <-ctx.Done():
		}
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticks:
				if _, err := r.Controller.ScanReminders(ctx); err != nil {
					return fmt.Errorf("remind: %w", err)
				}
			}
		}
	})
	g.Go(func() error {
		<-ctx.Done()
		ticker.Stop()
		return nil
	})

	r.Log.Info("remind: watching", zap.Duration("interval", r.Interval))
	return g.Wait()
}
