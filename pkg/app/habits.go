package app

import (
	"tableflip.dev/daybook/pkg/entity"
)

// HabitInput carries the form fields of a new habit.
type HabitInput struct {
	Title    string
	Category entity.Category
}

// HabitPatch lists the habit fields to change; nil fields are left alone.
type HabitPatch struct {
	Title    *string
	Category *entity.Category
}

// Habit returns a copy of the habit with id.
func (c *Controller) Habit(id string) (entity.Habit, bool) {
	i := c.State.HabitIndex(id)
	if i < 0 {
		return entity.Habit{}, false
	}
	return cloneHabit(c.State.Habits[i]), true
}

// AddHabit prepends a new habit with a zero streak.
func (c *Controller) AddHabit(in HabitInput) (entity.Habit, error) {
	h := entity.NewHabit(in.Title, categoryOrDefault(in.Category), c.now())
	c.State.Habits = append([]entity.Habit{h}, c.State.Habits...)
	return h, c.commit("habit.add")
}

// EditHabit merges p into the habit.
func (c *Controller) EditHabit(id string, p HabitPatch) (entity.Habit, error) {
	i := c.State.HabitIndex(id)
	if i < 0 {
		return entity.Habit{}, ErrNotFound
	}
	h := &c.State.Habits[i]
	if p.Title != nil {
		h.Title = *p.Title
	}
	if p.Category != nil {
		h.Category = *p.Category
	}
	return *h, c.commit("habit.edit")
}

// ToggleHabit marks the habit done today, or undoes today's mark. The streak
// is a plain counter: it goes up on mark and down on unmark, never below
// zero, and missed days do not reset it.
func (c *Controller) ToggleHabit(id string) (entity.Habit, error) {
	i := c.State.HabitIndex(id)
	if i < 0 {
		return entity.Habit{}, ErrNotFound
	}
	h := &c.State.Habits[i]
	if h.History == nil {
		h.History = map[string]bool{}
	}
	today := entity.DayKey(c.now())
	if h.History[today] {
		delete(h.History, today)
		if h.Streak > 0 {
			h.Streak--
		}
	} else {
		h.History[today] = true
		h.Streak++
	}
	return cloneHabit(*h), c.commit("habit.toggle")
}

// DeleteHabit removes the habit after confirmation. It reports whether
// anything was removed.
func (c *Controller) DeleteHabit(id string) (bool, error) {
	i := c.State.HabitIndex(id)
	if i < 0 {
		return false, nil
	}
	if !c.confirm("Delete habit %q?", c.State.Habits[i].Title) {
		return false, nil
	}
	c.State.Habits = append(c.State.Habits[:i:i], c.State.Habits[i+1:]...)
	return true, c.commit("habit.delete")
}

func cloneHabit(h entity.Habit) entity.Habit {
	history := make(map[string]bool, len(h.History))
	for k, v := range h.History {
		history[k] = v
	}
	h.History = history
	return h
}
