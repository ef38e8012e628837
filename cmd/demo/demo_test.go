package main

import (
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/store"
)

func TestSeed(t *testing.T) {
	now := time.Date(2024, 1, 2, 8, 0, 0, 0, time.Local)
	kv := store.NewMemory()
	c := app.New(kv, app.Options{Now: func() time.Time { return now }})
	if err := c.Load(); err != nil {
		t.Fatal(err)
	}
	if err := seed(c, now); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s := c.Stats()
	if s.TotalNotes != 3 || s.TotalTasks != 3 || s.TotalHabits != 2 || s.HabitsDone != 1 {
		t.Fatalf("unexpected stats %+v", s)
	}
	if _, err := kv.Read(store.KeyTasks); err != nil {
		t.Fatalf("tasks not persisted: %v", err)
	}
}
