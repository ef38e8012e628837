// Package viewmodel computes display-ready views from daybook state. Nothing
// here touches a terminal; committing a View is the renderer's job.
package viewmodel

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/state"
)

const (
	dateFormat = "Jan 2, 2006"
	dueFormat  = "Jan 2 15:04"
)

// Item is one row of a list view.
type Item struct {
	ID       string
	Kind     entity.Kind
	Title    string
	Body     string
	Category entity.Category
	Priority entity.Priority
	// Badge is the short indicator next to the title: the priority of a
	// task or the streak of a habit.
	Badge string
	Date  string

	Due         string
	DueRelative string
	Overdue     bool

	Completed bool
	DoneToday bool
	Streak    int
}

// View is everything a renderer needs for one frame.
type View struct {
	Tab    state.Tab
	Filter string
	Theme  state.Theme
	Items  []Item
	// Empty is set when a list tab has nothing to show after filtering.
	Empty    bool
	Stats    state.Stats
	Calendar *MonthView
}

// Build recomputes the view for the active tab from scratch.
func Build(s *state.Store, now time.Time) View {
	v := View{
		Tab:    s.Tab,
		Filter: s.Filter,
		Theme:  s.Theme,
		Stats:  s.Stats(),
	}
	switch s.Tab {
	case state.TabTasks:
		for _, t := range FilterTasks(s.Tasks, s.Filter) {
			v.Items = append(v.Items, TaskItem(t, now))
		}
	case state.TabHabits:
		for _, h := range FilterHabits(s.Habits, s.Filter) {
			v.Items = append(v.Items, HabitItem(h, now))
		}
	case state.TabCalendar:
		month := s.Month
		if month.IsZero() {
			month = now
		}
		cal := Month(s, month, now)
		v.Calendar = &cal
		return v
	default:
		for _, n := range FilterNotes(s.Notes, s.Filter) {
			v.Items = append(v.Items, NoteItem(n))
		}
	}
	v.Empty = len(v.Items) == 0
	return v
}

func matches(filter string, fields ...string) bool {
	if filter == "" {
		return true
	}
	filter = strings.ToLower(filter)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), filter) {
			return true
		}
	}
	return false
}

// FilterNotes keeps notes whose title or content contains filter, ignoring
// case. The result is a new slice; notes is not modified.
func FilterNotes(notes []entity.Note, filter string) []entity.Note {
	out := make([]entity.Note, 0, len(notes))
	for _, n := range notes {
		if matches(filter, n.Title, n.Content) {
			out = append(out, n)
		}
	}
	return out
}

// FilterTasks keeps tasks whose title contains filter and orders incomplete
// tasks before completed ones, preserving relative order otherwise.
func FilterTasks(tasks []entity.Task, filter string) []entity.Task {
	out := make([]entity.Task, 0, len(tasks))
	for _, t := range tasks {
		if matches(filter, t.Title) {
			out = append(out, t)
		}
	}
	SortTasks(out)
	return out
}

// SortTasks stably moves completed tasks after incomplete ones.
func SortTasks(tasks []entity.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return !tasks[i].Completed && tasks[j].Completed
	})
}

// FilterHabits keeps habits whose title contains filter.
func FilterHabits(habits []entity.Habit, filter string) []entity.Habit {
	out := make([]entity.Habit, 0, len(habits))
	for _, h := range habits {
		if matches(filter, h.Title) {
			out = append(out, h)
		}
	}
	return out
}

// NoteItem converts a note to a list row.
func NoteItem(n entity.Note) Item {
	it := Item{
		ID:       n.ID,
		Kind:     entity.KindNote,
		Title:    n.Title,
		Body:     n.Content,
		Category: n.Category,
		Date:     formatDate(n.CreatedAt),
	}
	if n.UpdatedAt != nil && !n.UpdatedAt.IsZero() {
		it.Date = fmt.Sprintf("%s (edited %s)", it.Date, formatDate(*n.UpdatedAt))
	}
	return it
}

// TaskItem converts a task to a list row.
func TaskItem(t entity.Task, now time.Time) Item {
	it := Item{
		ID:        t.ID,
		Kind:      entity.KindTask,
		Title:     t.Title,
		Category:  t.Category,
		Priority:  t.Priority,
		Badge:     string(priorityOrDefault(t.Priority)),
		Date:      formatDate(t.CreatedAt),
		Completed: t.Completed,
	}
	if due, ok := t.Due(); ok {
		it.Due = due.Local().Format(dueFormat)
		it.DueRelative = humanize.RelTime(due, now, "ago", "from now")
		it.Overdue = !t.Completed && !due.After(now)
	}
	return it
}

// HabitItem converts a habit to a list row.
func HabitItem(h entity.Habit, now time.Time) Item {
	return Item{
		ID:        h.ID,
		Kind:      entity.KindHabit,
		Title:     h.Title,
		Category:  h.Category,
		Badge:     streakBadge(h.Streak),
		Date:      formatDate(h.CreatedAt),
		DoneToday: h.DoneOn(now),
		Streak:    h.Streak,
	}
}

func priorityOrDefault(p entity.Priority) entity.Priority {
	if _, ok := entity.ParsePriority(string(p)); !ok || p == "" {
		return entity.Medium
	}
	return p
}

func streakBadge(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

func formatDate(ts entity.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Local().Format(dateFormat)
}
