package reminder

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"tableflip.dev/daybook/pkg/entity"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestScanFiresOnce(t *testing.T) {
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.Local)
	tasks := []entity.Task{
		{ID: "past", Title: "Pay rent", DueDate: "2024-01-01T09:00"},
		{ID: "exact", Title: "Call", DueDate: "2024-01-02T12:00"},
		{ID: "future", Title: "Later", DueDate: "2024-01-03T09:00"},
		{ID: "done", Title: "Done", DueDate: "2024-01-01T09:00", Completed: true},
		{ID: "none", Title: "No due"},
		{ID: "bad", Title: "Garbage", DueDate: "soon"},
	}

	fired := Scan(tasks, now)
	if len(fired) != 2 || fired[0].ID != "past" || fired[1].ID != "exact" {
		t.Fatalf("unexpected first scan %+v", fired)
	}
	if !tasks[0].ReminderSent || !tasks[1].ReminderSent || tasks[2].ReminderSent {
		t.Fatalf("unexpected flags after scan: %+v", tasks)
	}
	if again := Scan(tasks, now); len(again) != 0 {
		t.Fatalf("second scan must not fire, got %+v", again)
	}
}

func TestMessageIncludesDue(t *testing.T) {
	m := Message(entity.Task{Title: "Pay rent", DueDate: "2024-01-01T09:00"})
	if m.Title != "Task due" || m.Body != "Pay rent (due Jan 1 09:00)" {
		t.Fatalf("unexpected message %+v", m)
	}
}

func TestTickerRunsAndStops(t *testing.T) {
	tk := NewTicker(nil)
	var calls atomic.Int32
	ticked := make(chan struct{}, 1)
	tk.Start(context.Background(), 5*time.Millisecond, func(time.Time) {
		calls.Add(1)
		select {
		case ticked <- struct{}{}:
		default:
		}
	})
	if !tk.Running() {
		t.Fatalf("expected running ticker")
	}
	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatalf("ticker never fired")
	}
	tk.Stop()
	tk.Stop()
	if tk.Running() {
		t.Fatalf("expected stopped ticker")
	}
	n := calls.Load()
	time.Sleep(20 * time.Millisecond)
	if calls.Load() != n {
		t.Fatalf("ticker fired after stop")
	}
}

func TestTickerRestartReplacesInterval(t *testing.T) {
	tk := NewTicker(nil)
	var first, second atomic.Int32
	tk.Start(context.Background(), time.Hour, func(time.Time) { first.Add(1) })
	ticked := make(chan struct{}, 1)
	tk.Start(context.Background(), 5*time.Millisecond, func(time.Time) {
		second.Add(1)
		select {
		case ticked <- struct{}{}:
		default:
		}
	})
	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatalf("replacement ticker never fired")
	}
	tk.Stop()
	if first.Load() != 0 {
		t.Fatalf("replaced ticker should not fire")
	}
}

func TestTickerExitsOnContextCancel(t *testing.T) {
	tk := NewTicker(nil)
	ctx, cancel := context.WithCancel(context.Background())
	tk.Start(ctx, time.Hour, func(time.Time) {})
	cancel()
	tk.Stop()
}
