package state

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/store"
)

var equateTimestamps = cmp.Comparer(func(a, b entity.Timestamp) bool {
	return a.Equal(b.Time)
})

func sampleStore(now time.Time) *Store {
	s := New(nil)
	s.Notes = []entity.Note{entity.NewNote("Groceries", "milk, eggs", entity.Personal, now)}
	s.Tasks = []entity.Task{
		entity.NewTask("Pay rent", entity.Personal, entity.High, "2024-01-01T09:00", now),
		{ID: "done", Title: "Ship", Category: entity.Work, Priority: entity.Low, Completed: true, CreatedAt: entity.Timestamp{Time: now}},
	}
	h := entity.NewHabit("Walk", entity.Personal, now)
	h.History[entity.DayKey(now)] = true
	h.Streak = 4
	s.Habits = []entity.Habit{h}
	return s
}

func TestSaveThenLoadMirrorsState(t *testing.T) {
	now := time.Date(2024, 1, 2, 8, 0, 0, 0, time.Local)
	kv := store.NewMemory()
	s := sampleStore(now)
	if err := s.Save(kv, now); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := New(nil)
	loaded.Load(kv, now)
	if diff := cmp.Diff(s.Notes, loaded.Notes, equateTimestamps); diff != "" {
		t.Fatalf("notes mismatch (-mem +stored):\n%s", diff)
	}
	if diff := cmp.Diff(s.Tasks, loaded.Tasks, equateTimestamps); diff != "" {
		t.Fatalf("tasks mismatch (-mem +stored):\n%s", diff)
	}
	if diff := cmp.Diff(s.Habits, loaded.Habits, equateTimestamps); diff != "" {
		t.Fatalf("habits mismatch (-mem +stored):\n%s", diff)
	}
}

func TestSaveRefreshesStats(t *testing.T) {
	now := time.Date(2024, 1, 2, 8, 0, 0, 0, time.Local)
	kv := store.NewMemory()
	s := sampleStore(now)
	if err := s.Save(kv, now); err != nil {
		t.Fatalf("save: %v", err)
	}
	want := Stats{TotalNotes: 1, TotalTasks: 2, CompletedTasks: 1, TotalHabits: 1, HabitsDone: 1, BestStreak: 4}
	if diff := cmp.Diff(want, s.Stats()); diff != "" {
		t.Fatalf("stats mismatch:\n%s", diff)
	}
}

func TestLoadToleratesAbsentAndMalformed(t *testing.T) {
	kv := store.NewMemory()
	_ = kv.Write(store.KeyNotes, []byte("{not json"))
	_ = kv.Write(store.KeyTasks, []byte(`[{"id":"t1","title":"ok","completed":false}]`))
	_ = kv.Write(store.KeyTheme, []byte("purple"))

	s := New(nil)
	s.Load(kv, time.Now())
	if len(s.Notes) != 0 {
		t.Fatalf("expected malformed notes to leave default, got %d", len(s.Notes))
	}
	if len(s.Tasks) != 1 || s.Tasks[0].ID != "t1" {
		t.Fatalf("expected tasks to load, got %+v", s.Tasks)
	}
	if len(s.Habits) != 0 || s.Habits == nil {
		t.Fatalf("expected empty habits default")
	}
	if s.Theme != ThemeLight {
		t.Fatalf("expected unknown theme ignored, got %q", s.Theme)
	}
}

func TestLoadFillsNilHistory(t *testing.T) {
	kv := store.NewMemory()
	_ = kv.Write(store.KeyHabits, []byte(`[{"id":"h1","title":"Read","streak":2}]`))
	s := New(nil)
	s.Load(kv, time.Now())
	if s.Habits[0].History == nil {
		t.Fatalf("expected history map to be initialised")
	}
}

func TestThemePersists(t *testing.T) {
	kv := store.NewMemory()
	s := New(nil)
	s.Theme = s.Theme.Toggle()
	if err := s.SaveTheme(kv); err != nil {
		t.Fatalf("save theme: %v", err)
	}
	loaded := New(nil)
	loaded.Load(kv, time.Now())
	if loaded.Theme != ThemeDark {
		t.Fatalf("expected dark theme, got %q", loaded.Theme)
	}
}

func TestPINLifecycle(t *testing.T) {
	kv := store.NewMemory()
	s := New(nil)
	if s.Locked() {
		t.Fatalf("new store should not be locked")
	}
	if err := s.SetPIN(kv, "1234"); err != nil {
		t.Fatalf("set pin: %v", err)
	}
	loaded := New(nil)
	loaded.Load(kv, time.Now())
	if !loaded.Locked() {
		t.Fatalf("expected loaded store to be locked")
	}
	if err := loaded.CheckPIN("1234"); err != nil {
		t.Fatalf("expected PIN to match: %v", err)
	}
	if err := loaded.CheckPIN("0000"); !errors.Is(err, ErrBadPIN) {
		t.Fatalf("expected ErrBadPIN, got %v", err)
	}
	if err := loaded.ClearPIN(kv); err != nil {
		t.Fatalf("clear pin: %v", err)
	}
	if _, err := kv.Read(store.KeyPIN); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected pin key erased, got %v", err)
	}
}

func TestIndexLookups(t *testing.T) {
	s := sampleStore(time.Now())
	if s.TaskIndex("done") != 1 {
		t.Fatalf("expected task index 1")
	}
	if s.NoteIndex("missing") != -1 || s.HabitIndex("missing") != -1 {
		t.Fatalf("expected -1 for missing ids")
	}
}

func TestParseTab(t *testing.T) {
	for in, want := range map[string]Tab{"tasks": TabTasks, "habit": TabHabits, "cal": TabCalendar, "notes": TabNotes} {
		got, ok := ParseTab(in)
		if !ok || got != want {
			t.Fatalf("ParseTab(%q) = %q, %v", in, got, ok)
		}
	}
	if _, ok := ParseTab("inbox"); ok {
		t.Fatalf("expected unknown tab to fail")
	}
}
