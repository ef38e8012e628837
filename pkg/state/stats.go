package state

import (
	"time"
)

// Stats are the derived counters shown alongside every view.
type Stats struct {
	TotalNotes     int `json:"totalNotes" yaml:"totalNotes"`
	TotalTasks     int `json:"totalTasks" yaml:"totalTasks"`
	CompletedTasks int `json:"completedTasks" yaml:"completedTasks"`
	TotalHabits    int `json:"totalHabits" yaml:"totalHabits"`
	HabitsDone     int `json:"habitsDoneToday" yaml:"habitsDoneToday"`
	BestStreak     int `json:"bestStreak" yaml:"bestStreak"`
}

// Stats returns the counters computed by the last load or save.
func (s *Store) Stats() Stats {
	return s.stats
}

// RefreshStats recomputes the counters from the collections.
func (s *Store) RefreshStats(now time.Time) {
	st := Stats{
		TotalNotes:  len(s.Notes),
		TotalTasks:  len(s.Tasks),
		TotalHabits: len(s.Habits),
	}
	for _, t := range s.Tasks {
		if t.Completed {
			st.CompletedTasks++
		}
	}
	for _, h := range s.Habits {
		if h.DoneOn(now) {
			st.HabitsDone++
		}
		if h.Streak > st.BestStreak {
			st.BestStreak = h.Streak
		}
	}
	s.stats = st
}
