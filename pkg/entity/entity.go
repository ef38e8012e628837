// Package entity defines the records daybook keeps: notes, tasks and habits.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind names one of the three entity collections.
type Kind string

const (
	KindNote  Kind = "note"
	KindTask  Kind = "task"
	KindHabit Kind = "habit"
)

// Kinds lists every entity kind in display order.
func Kinds() []Kind {
	return []Kind{KindNote, KindTask, KindHabit}
}

// ParseKind resolves singular and plural spellings of a kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "note", "notes":
		return KindNote, true
	case "task", "tasks", "todo", "todos":
		return KindTask, true
	case "habit", "habits":
		return KindHabit, true
	}
	return "", false
}

// Category groups entities for display.
type Category string

const (
	Personal Category = "Personal"
	Work     Category = "Work"
	Study    Category = "Study"
	Ideas    Category = "Ideas"
)

// Categories returns the known categories in form order.
func Categories() []Category {
	return []Category{Personal, Work, Study, Ideas}
}

// ParseCategory matches a category case-insensitively. The empty string
// selects Personal, the form default.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Personal, true
	}
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// Next cycles to the following category, wrapping around.
func (c Category) Next() Category {
	all := Categories()
	for i, cat := range all {
		if cat == c {
			return all[(i+1)%len(all)]
		}
	}
	return Personal
}

// Priority ranks tasks.
type Priority string

const (
	Low    Priority = "Low"
	Medium Priority = "Medium"
	High   Priority = "High"
)

// Priorities returns the known priorities from lowest to highest.
func Priorities() []Priority {
	return []Priority{Low, Medium, High}
}

// ParsePriority matches a priority case-insensitively. The empty string
// selects Medium.
func ParsePriority(s string) (Priority, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Medium, true
	}
	for _, p := range Priorities() {
		if strings.EqualFold(string(p), s) {
			return p, true
		}
	}
	return "", false
}

// Next cycles to the following priority, wrapping around.
func (p Priority) Next() Priority {
	switch p {
	case Low:
		return Medium
	case Medium:
		return High
	default:
		return Low
	}
}

// Rank orders priorities; unknown values rank as Medium.
func (p Priority) Rank() int {
	switch p {
	case Low:
		return 0
	case High:
		return 2
	default:
		return 1
	}
}

// NewID returns a fresh opaque identifier.
func NewID() string {
	return uuid.NewString()
}

// Note is a free-form text record.
type Note struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Content   string     `json:"content" yaml:"content"`
	Category  Category   `json:"category" yaml:"category"`
	CreatedAt Timestamp  `json:"createdAt" yaml:"createdAt"`
	UpdatedAt *Timestamp `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// NewNote builds a note stamped with now.
func NewNote(title, content string, category Category, now time.Time) Note {
	return Note{
		ID:        NewID(),
		Title:     title,
		Content:   content,
		Category:  category,
		CreatedAt: Timestamp{Time: now},
	}
}

// Task is a to-do item with an optional due time.
type Task struct {
	ID           string    `json:"id" yaml:"id"`
	Title        string    `json:"title" yaml:"title"`
	Category     Category  `json:"category" yaml:"category"`
	Priority     Priority  `json:"priority" yaml:"priority"`
	DueDate      string    `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	Completed    bool      `json:"completed" yaml:"completed"`
	ReminderSent bool      `json:"reminderSent" yaml:"reminderSent"`
	CreatedAt    Timestamp `json:"createdAt" yaml:"createdAt"`
}

// NewTask builds an open task stamped with now.
func NewTask(title string, category Category, priority Priority, due string, now time.Time) Task {
	return Task{
		ID:        NewID(),
		Title:     title,
		Category:  category,
		Priority:  priority,
		DueDate:   strings.TrimSpace(due),
		CreatedAt: Timestamp{Time: now},
	}
}

// Due reports the parsed due time in the local zone.
func (t Task) Due() (time.Time, bool) {
	return ParseDue(t.DueDate, time.Local)
}

// Habit is a recurring activity with a done-per-day history.
type Habit struct {
	ID        string          `json:"id" yaml:"id"`
	Title     string          `json:"title" yaml:"title"`
	Category  Category        `json:"category" yaml:"category"`
	Streak    int             `json:"streak" yaml:"streak"`
	History   map[string]bool `json:"history" yaml:"history"`
	CreatedAt Timestamp       `json:"createdAt" yaml:"createdAt"`
}

// NewHabit builds a habit with an empty history.
func NewHabit(title string, category Category, now time.Time) Habit {
	return Habit{
		ID:        NewID(),
		Title:     title,
		Category:  category,
		History:   map[string]bool{},
		CreatedAt: Timestamp{Time: now},
	}
}

// DoneOn reports whether the habit is marked done on the given day.
func (h Habit) DoneOn(day time.Time) bool {
	return h.History[DayKey(day)]
}
