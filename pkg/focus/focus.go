// Package focus implements a pomodoro-style countdown.
package focus

import (
	"time"
)

// DefaultDuration is the countdown length when none is configured.
const DefaultDuration = 25 * time.Minute

// Status is the state of a session.
type Status int

const (
	Idle Status = iota
	Running
	Paused
	Finished
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return "idle"
	}
}

// Session is a single countdown. Every state change bumps the generation so
// ticks scheduled for an earlier state are ignored.
type Session struct {
	duration  time.Duration
	remaining time.Duration
	deadline  time.Time
	status    Status
	gen       int
}

// New returns an idle session of length d.
func New(d time.Duration) *Session {
	if d <= 0 {
		d = DefaultDuration
	}
	return &Session{duration: d, remaining: d}
}

// Duration is the configured length.
func (s *Session) Duration() time.Duration { return s.duration }

// Status returns the current state.
func (s *Session) Status() Status { return s.status }

// Gen is the current generation; ticks must carry it.
func (s *Session) Gen() int { return s.gen }

// Start begins a fresh countdown and returns its generation.
func (s *Session) Start(now time.Time) int {
	s.gen++
	s.status = Running
	s.remaining = s.duration
	s.deadline = now.Add(s.remaining)
	return s.gen
}

// Pause freezes a running countdown.
func (s *Session) Pause(now time.Time) {
	if s.status != Running {
		return
	}
	s.gen++
	s.remaining = s.deadline.Sub(now)
	if s.remaining < 0 {
		s.remaining = 0
	}
	s.status = Paused
}

// Resume continues a paused countdown and returns the new generation. It
// returns the current generation unchanged when not paused.
func (s *Session) Resume(now time.Time) int {
	if s.status != Paused {
		return s.gen
	}
	s.gen++
	s.status = Running
	s.deadline = now.Add(s.remaining)
	return s.gen
}

// Reset stops the countdown and restores the full duration.
func (s *Session) Reset() {
	s.gen++
	s.status = Idle
	s.remaining = s.duration
	s.deadline = time.Time{}
}

// Remaining is the time left at now.
func (s *Session) Remaining(now time.Time) time.Duration {
	switch s.status {
	case Running:
		if d := s.deadline.Sub(now); d > 0 {
			return d
		}
		return 0
	case Finished:
		return 0
	default:
		return s.remaining
	}
}

// Tick advances a running session. It reports true exactly once, on the tick
// that reaches the deadline; ticks from another generation are ignored.
func (s *Session) Tick(gen int, now time.Time) bool {
	if gen != s.gen || s.status != Running {
		return false
	}
	if now.Before(s.deadline) {
		return false
	}
	s.gen++
	s.status = Finished
	s.remaining = 0
	return true
}
