package viewmodel

import (
	"time"

	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/state"
)

const monthFormat = "January 2006"

// Day is one cell of a month grid.
type Day struct {
	Date       time.Time
	Day        int
	TasksDue   int
	OpenDue    int
	HabitsDone int
	IsToday    bool
}

// HasEntry reports whether anything happened or is due on the day.
func (d Day) HasEntry() bool {
	return d.TasksDue > 0 || d.HabitsDone > 0
}

// MonthView lays out a month starting on Sunday.
type MonthView struct {
	Title string
	Month time.Time
	// Offset is the weekday of the first of the month, Sunday == 0.
	Offset int
	Days   []Day
}

// Weeks splits the month into rows of seven cells; nil entries pad the
// first and last week.
func (m MonthView) Weeks() [][]*Day {
	var weeks [][]*Day
	cells := m.Offset + len(m.Days)
	rows := (cells + 6) / 7
	for row := 0; row < rows; row++ {
		week := make([]*Day, 7)
		for col := 0; col < 7; col++ {
			idx := row*7 + col - m.Offset
			if idx >= 0 && idx < len(m.Days) {
				week[col] = &m.Days[idx]
			}
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// Month builds the grid for the month containing month, counting tasks due
// and habits done per day.
func Month(s *state.Store, month, now time.Time) MonthView {
	month = month.Local()
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.Local)
	n := first.AddDate(0, 1, -1).Day()

	mv := MonthView{
		Title:  first.Format(monthFormat),
		Month:  first,
		Offset: int(first.Weekday()),
		Days:   make([]Day, n),
	}
	for i := range mv.Days {
		date := first.AddDate(0, 0, i)
		mv.Days[i] = Day{
			Date:    date,
			Day:     i + 1,
			IsToday: entity.Timestamp{Time: date}.SameDay(now),
		}
	}

	for _, t := range s.Tasks {
		due, ok := t.Due()
		if !ok {
			continue
		}
		due = due.Local()
		if due.Year() != first.Year() || due.Month() != first.Month() {
			continue
		}
		d := &mv.Days[due.Day()-1]
		d.TasksDue++
		if !t.Completed {
			d.OpenDue++
		}
	}
	for _, h := range s.Habits {
		for key, done := range h.History {
			if !done {
				continue
			}
			day, err := time.ParseInLocation(entity.DayLayout, key, time.Local)
			if err != nil || day.Year() != first.Year() || day.Month() != first.Month() {
				continue
			}
			mv.Days[day.Day()-1].HabitsDone++
		}
	}
	return mv
}

// ShiftMonth moves month by delta months, anchored on the first.
func ShiftMonth(month time.Time, delta int) time.Time {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return first.AddDate(0, delta, 0)
}
