// Package gesture recognises swipe and long-press gestures on list rows.
//
// The recognizer is a state machine over idle, pressed and dragging. A press
// arms a long-press deadline identified by a token; the caller schedules the
// deadline and reports it back with LongPressElapsed. Moving past the jitter
// tolerance before the deadline cancels the long-press.
package gesture

import (
	"time"
)

// State of the recognizer.
type State int

const (
	Idle State = iota
	Pressed
	Dragging
)

func (s State) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Dragging:
		return "dragging"
	default:
		return "idle"
	}
}

// Action is the outcome of a gesture.
type Action int

const (
	None Action = iota
	Tap
	Edit
	Delete
	Toggle
	Reset
)

func (a Action) String() string {
	switch a {
	case Tap:
		return "tap"
	case Edit:
		return "edit"
	case Delete:
		return "delete"
	case Toggle:
		return "toggle"
	case Reset:
		return "reset"
	default:
		return "none"
	}
}

// Config holds the thresholds, in the caller's units.
type Config struct {
	SwipeThreshold int
	Jitter         int
	LongPress      time.Duration
}

// DefaultConfig is tuned for terminal cells.
func DefaultConfig() Config {
	return Config{SwipeThreshold: 6, Jitter: 1, LongPress: 500 * time.Millisecond}
}

// Target identifies the row under the press.
type Target struct {
	ID string
	// AllowToggle enables the positive swipe.
	AllowToggle bool
}

// Event is emitted when a gesture resolves.
type Event struct {
	Action Action
	Target Target
}

// Recognizer is not safe for concurrent use; drive it from one goroutine.
type Recognizer struct {
	cfg    Config
	state  State
	target Target
	ox, oy int
	dx     int
	token  int
}

// New returns an idle recognizer. Zero fields in cfg take the defaults.
func New(cfg Config) *Recognizer {
	def := DefaultConfig()
	if cfg.SwipeThreshold <= 0 {
		cfg.SwipeThreshold = def.SwipeThreshold
	}
	if cfg.Jitter < 0 {
		cfg.Jitter = 0
	}
	if cfg.LongPress <= 0 {
		cfg.LongPress = def.LongPress
	}
	return &Recognizer{cfg: cfg}
}

// Config returns the active thresholds.
func (r *Recognizer) Config() Config { return r.cfg }

// State returns the current state.
func (r *Recognizer) State() State { return r.state }

// Target returns the row being gestured on.
func (r *Recognizer) Target() Target { return r.target }

// Offset is the horizontal displacement while dragging.
func (r *Recognizer) Offset() int {
	if r.state != Dragging {
		return 0
	}
	return r.dx
}

// Press starts a gesture and returns the long-press token. Any gesture in
// progress is abandoned.
func (r *Recognizer) Press(t Target, x, y int) int {
	r.token++
	r.state = Pressed
	r.target = t
	r.ox, r.oy = x, y
	r.dx = 0
	return r.token
}

// Move updates the displacement. Leaving the jitter box turns a press into a
// drag and cancels the long-press.
func (r *Recognizer) Move(x, y int) State {
	switch r.state {
	case Pressed:
		r.dx = x - r.ox
		if abs(r.dx) > r.cfg.Jitter || abs(y-r.oy) > r.cfg.Jitter {
			r.state = Dragging
			r.token++
		}
	case Dragging:
		r.dx = x - r.ox
	}
	return r.state
}

// Release ends the gesture.
func (r *Recognizer) Release(x, y int) Event {
	switch r.state {
	case Pressed:
		r.Move(x, y)
		if r.state == Pressed {
			return r.finish(Tap)
		}
		return r.release()
	case Dragging:
		r.dx = x - r.ox
		return r.release()
	default:
		return Event{}
	}
}

func (r *Recognizer) release() Event {
	switch {
	case r.dx <= -r.cfg.SwipeThreshold:
		return r.finish(Delete)
	case r.dx >= r.cfg.SwipeThreshold && r.target.AllowToggle:
		return r.finish(Toggle)
	default:
		return r.finish(Reset)
	}
}

// LongPressElapsed reports that the deadline for token passed. It fires Edit
// only while the same press is still held within the jitter box; the
// gesture is consumed and the later release is ignored.
func (r *Recognizer) LongPressElapsed(token int) Event {
	if r.state != Pressed || token != r.token {
		return Event{}
	}
	return r.finish(Edit)
}

// Cancel drops any gesture in progress.
func (r *Recognizer) Cancel() {
	r.token++
	r.state = Idle
	r.target = Target{}
	r.dx = 0
}

func (r *Recognizer) finish(a Action) Event {
	ev := Event{Action: a, Target: r.target}
	r.Cancel()
	return ev
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
