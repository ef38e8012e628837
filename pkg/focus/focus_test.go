package focus

import (
	"testing"
	"time"
)

func TestSessionCompletesOnce(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	s := New(10 * time.Minute)
	gen := s.Start(start)

	if s.Tick(gen, start.Add(5*time.Minute)) {
		t.Fatalf("should not finish halfway")
	}
	if got := s.Remaining(start.Add(5 * time.Minute)); got != 5*time.Minute {
		t.Fatalf("expected 5m remaining, got %s", got)
	}
	if !s.Tick(gen, start.Add(10*time.Minute)) {
		t.Fatalf("expected completion at deadline")
	}
	if s.Tick(gen, start.Add(11*time.Minute)) || s.Tick(s.Gen(), start.Add(12*time.Minute)) {
		t.Fatalf("completion must fire once")
	}
	if s.Status() != Finished || s.Remaining(start.Add(time.Hour)) != 0 {
		t.Fatalf("expected finished session")
	}
}

func TestStaleTicksIgnored(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	s := New(time.Minute)
	old := s.Start(start)
	s.Reset()
	if s.Tick(old, start.Add(2*time.Minute)) {
		t.Fatalf("tick from reset session must be ignored")
	}
	fresh := s.Start(start.Add(3 * time.Minute))
	if s.Tick(old, start.Add(10*time.Minute)) {
		t.Fatalf("tick from earlier generation must be ignored")
	}
	if !s.Tick(fresh, start.Add(4*time.Minute)) {
		t.Fatalf("current generation should complete")
	}
}

func TestPauseResume(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	s := New(10 * time.Minute)
	gen := s.Start(start)
	s.Pause(start.Add(4 * time.Minute))
	if s.Status() != Paused || s.Remaining(start.Add(time.Hour)) != 6*time.Minute {
		t.Fatalf("expected 6m frozen, got %s", s.Remaining(start.Add(time.Hour)))
	}
	if s.Tick(gen, start.Add(time.Hour)) {
		t.Fatalf("paused session must not complete")
	}
	resumed := s.Resume(start.Add(20 * time.Minute))
	if resumed == gen {
		t.Fatalf("resume must start a new generation")
	}
	if s.Tick(resumed, start.Add(25*time.Minute)) {
		t.Fatalf("should not finish before the resumed deadline")
	}
	if !s.Tick(resumed, start.Add(26*time.Minute)) {
		t.Fatalf("expected completion after resume")
	}
}

func TestDefaults(t *testing.T) {
	s := New(0)
	if s.Duration() != DefaultDuration || s.Status() != Idle || s.Remaining(time.Now()) != DefaultDuration {
		t.Fatalf("unexpected defaults")
	}
	if s.Resume(time.Now()) != s.Gen() {
		t.Fatalf("resume on idle session should be a no-op")
	}
}
