// Package reminder finds tasks whose due time has passed and runs the
// periodic scan.
package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/notify"
)

// DefaultInterval is the scan period when none is configured.
const DefaultInterval = time.Minute

// Due reports whether t should fire at now: incomplete, due at or before
// now, and not yet reminded.
func Due(t entity.Task, now time.Time) bool {
	if t.Completed || t.ReminderSent {
		return false
	}
	due, ok := t.Due()
	return ok && !due.After(now)
}

// Scan flips ReminderSent on every due task in place and returns copies of
// the tasks that fired, in collection order.
func Scan(tasks []entity.Task, now time.Time) []entity.Task {
	var fired []entity.Task
	for i := range tasks {
		if !Due(tasks[i], now) {
			continue
		}
		tasks[i].ReminderSent = true
		fired = append(fired, tasks[i])
	}
	return fired
}

// Message is the notification for a fired task.
func Message(t entity.Task) notify.Notification {
	body := t.Title
	if due, ok := t.Due(); ok {
		body = fmt.Sprintf("%s (due %s)", t.Title, due.Local().Format("Jan 2 15:04"))
	}
	return notify.Notification{Title: "Task due", Body: body}
}

// Ticker calls a function on a fixed interval until stopped. Starting it
// again replaces the running interval.
type Ticker struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	log    *zap.Logger
}

// NewTicker returns a stopped ticker.
func NewTicker(log *zap.Logger) *Ticker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ticker{log: log}
}

// Start stops any previous interval and begins calling fn every interval
// until ctx is done or Stop is called. fn runs on the ticker goroutine.
func (t *Ticker) Start(ctx context.Context, interval time.Duration, fn func(now time.Time)) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t.Stop()

	t.mu.Lock()
	defer t.mu.Unlock()
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	t.cancel, t.done = cancel, done

	t.log.Debug("reminder: ticker started", zap.Duration("interval", interval))
	go func() {
		defer close(done)
		tick := time.NewTicker(interval)
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-tick.C:
				fn(now)
			}
		}
	}()
}

// Stop cancels the running interval and waits for it to exit. It is safe to
// call on a stopped ticker.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	t.log.Debug("reminder: ticker stopped")
}

// Running reports whether an interval is active.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}
