package app

import (
	"sort"
	"time"

	"tableflip.dev/daybook/pkg/entity"
)

// ReportHabit is a habit and how many days it was done in the window.
type ReportHabit struct {
	Habit entity.Habit `json:"habit" yaml:"habit"`
	Days  int          `json:"days" yaml:"days"`
}

// ReportSection groups a window's activity by category.
type ReportSection struct {
	Category entity.Category `json:"category" yaml:"category"`
	Tasks    []entity.Task   `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	Habits   []ReportHabit   `json:"habits,omitempty" yaml:"habits,omitempty"`
}

// ReportResult is the activity between Since and Until.
type ReportResult struct {
	Since    time.Time       `json:"since" yaml:"since"`
	Until    time.Time       `json:"until" yaml:"until"`
	Sections []ReportSection `json:"sections" yaml:"sections"`
	// Completed counts completed tasks due in the window.
	Completed int `json:"completed" yaml:"completed"`
	// CheckIns counts habit days done in the window.
	CheckIns int `json:"checkIns" yaml:"checkIns"`
}

// Report lists tasks due and habit check-ins between since and until,
// grouped by category in the fixed category order, unknown categories last.
// Tasks within a section run from high to low priority.
func (c *Controller) Report(since, until time.Time) ReportResult {
	if since.After(until) {
		since, until = until, since
	}
	res := ReportResult{Since: since, Until: until}
	grouped := make(map[entity.Category]*ReportSection)
	section := func(cat entity.Category) *ReportSection {
		if s, ok := grouped[cat]; ok {
			return s
		}
		s := &ReportSection{Category: cat}
		grouped[cat] = s
		return s
	}

	for _, t := range c.State.Tasks {
		due, ok := t.Due()
		if !ok || due.Before(since) || due.After(until) {
			continue
		}
		s := section(t.Category)
		s.Tasks = append(s.Tasks, t)
		if t.Completed {
			res.Completed++
		}
	}
	for _, h := range c.State.Habits {
		days := 0
		for key, done := range h.History {
			day, err := time.ParseInLocation(entity.DayLayout, key, time.Local)
			if err != nil || !done {
				continue
			}
			if day.AddDate(0, 0, 1).After(since) && !day.After(until) {
				days++
			}
		}
		if days == 0 {
			continue
		}
		s := section(h.Category)
		s.Habits = append(s.Habits, ReportHabit{Habit: cloneHabit(h), Days: days})
		res.CheckIns += days
	}

	if len(grouped) == 0 {
		return res
	}
	cats := make([]entity.Category, 0, len(grouped))
	for cat := range grouped {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		ri, rj := categoryRank(cats[i]), categoryRank(cats[j])
		if ri != rj {
			return ri < rj
		}
		return cats[i] < cats[j]
	})
	for _, cat := range cats {
		sec := grouped[cat]
		sort.SliceStable(sec.Tasks, func(i, j int) bool {
			return sec.Tasks[i].Priority.Rank() > sec.Tasks[j].Priority.Rank()
		})
		res.Sections = append(res.Sections, *sec)
	}
	return res
}

func categoryRank(cat entity.Category) int {
	for i, c := range entity.Categories() {
		if c == cat {
			return i
		}
	}
	return len(entity.Categories())
}
