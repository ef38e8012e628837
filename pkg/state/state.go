// Package state holds the in-memory daybook collections and mirrors them to
// a store.Storage.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/store"
)

// Tab is the active view.
type Tab string

const (
	TabNotes    Tab = "notes"
	TabTasks    Tab = "tasks"
	TabHabits   Tab = "habits"
	TabCalendar Tab = "calendar"
)

// Tabs lists the tabs in display order.
func Tabs() []Tab {
	return []Tab{TabNotes, TabTasks, TabHabits, TabCalendar}
}

// ParseTab resolves a tab name, accepting entity kind spellings.
func ParseTab(s string) (Tab, bool) {
	if s == string(TabCalendar) || s == "cal" {
		return TabCalendar, true
	}
	k, ok := entity.ParseKind(s)
	if !ok {
		return "", false
	}
	return TabFor(k), true
}

// TabFor maps an entity kind to its list tab.
func TabFor(k entity.Kind) Tab {
	switch k {
	case entity.KindTask:
		return TabTasks
	case entity.KindHabit:
		return TabHabits
	default:
		return TabNotes
	}
}

// Theme is the persisted colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle flips between light and dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Store is the single state container. It is owned by one controller and is
// not safe for concurrent use.
type Store struct {
	Notes  []entity.Note
	Tasks  []entity.Task
	Habits []entity.Habit

	Tab     Tab
	Filter  string
	Theme   Theme
	PINHash string
	// Month is the calendar month on display; zero means the current month.
	Month time.Time

	stats Stats
	log   *zap.Logger
}

// New returns an empty store on the notes tab.
func New(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		Notes:  []entity.Note{},
		Tasks:  []entity.Task{},
		Habits: []entity.Habit{},
		Tab:    TabNotes,
		Theme:  ThemeLight,
		log:    log,
	}
}

// Load hydrates the store. Absent or malformed keys leave the defaults in
// place; they are logged at debug level and never fail the load.
func (s *Store) Load(kv store.Storage, now time.Time) {
	var notes []entity.Note
	if s.readJSON(kv, store.KeyNotes, &notes) {
		s.Notes = notes
	}
	var tasks []entity.Task
	if s.readJSON(kv, store.KeyTasks, &tasks) {
		s.Tasks = tasks
	}
	var habits []entity.Habit
	if s.readJSON(kv, store.KeyHabits, &habits) {
		for i := range habits {
			if habits[i].History == nil {
				habits[i].History = map[string]bool{}
			}
		}
		s.Habits = habits
	}
	if v, ok := s.readText(kv, store.KeyTheme); ok && (Theme(v) == ThemeDark || Theme(v) == ThemeLight) {
		s.Theme = Theme(v)
	}
	if v, ok := s.readText(kv, store.KeyPIN); ok {
		s.PINHash = v
	}
	s.RefreshStats(now)
}

func (s *Store) readText(kv store.Storage, key string) (string, bool) {
	b, err := kv.Read(key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Debug("state: read failed, using default", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return string(b), true
}

func (s *Store) readJSON(kv store.Storage, key string, target any) bool {
	v, ok := s.readText(kv, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(v), target); err != nil {
		s.log.Debug("state: malformed value, using default", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Save writes the three collections and refreshes the derived stats. A nil
// collection is written as an empty array.
func (s *Store) Save(kv store.Storage, now time.Time) error {
	if err := writeJSON(kv, store.KeyNotes, nonNil(s.Notes)); err != nil {
		return err
	}
	if err := writeJSON(kv, store.KeyTasks, nonNil(s.Tasks)); err != nil {
		return err
	}
	if err := writeJSON(kv, store.KeyHabits, nonNil(s.Habits)); err != nil {
		return err
	}
	s.RefreshStats(now)
	return nil
}

// SaveTheme persists the theme key.
func (s *Store) SaveTheme(kv store.Storage) error {
	return kv.Write(store.KeyTheme, []byte(s.Theme))
}

func writeJSON(kv store.Storage, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("state: encode %s: %w", key, err)
	}
	return kv.Write(key, b)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// NoteIndex returns the position of the note with id, or -1.
func (s *Store) NoteIndex(id string) int {
	for i := range s.Notes {
		if s.Notes[i].ID == id {
			return i
		}
	}
	return -1
}

// TaskIndex returns the position of the task with id, or -1.
func (s *Store) TaskIndex(id string) int {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// HabitIndex returns the position of the habit with id, or -1.
func (s *Store) HabitIndex(id string) int {
	for i := range s.Habits {
		if s.Habits[i].ID == id {
			return i
		}
	}
	return -1
}
