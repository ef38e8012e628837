package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/viewmodel"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints a month grid. Days with tasks due or habits done are
// bold, open due tasks are yellow and today is underlined.
func (pp *PrettyPrint) Calendar(mv viewmodel.MonthView) {
	w := pp.out()
	tf := color.New(color.FgWhite, color.Italic)

	mid := (width - len(mv.Title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), mv.Title)
	_, _ = color.New(color.Faint).Fprintln(w, "Su Mo Tu We Th Fr Sa")

	for _, week := range mv.Weeks() {
		for col, d := range week {
			if d == nil {
				if col < len(week)-1 {
					_, _ = fmt.Fprint(w, "   ")
				}
				continue
			}
			_, _ = dayColor(*d).Fprintf(w, "%2d", d.Day)
			if col < len(week)-1 {
				_, _ = fmt.Fprint(w, " ")
			}
		}
		_, _ = fmt.Fprint(w, "\n")
	}
	_, _ = fmt.Fprint(w, "\n")
}

func dayColor(d viewmodel.Day) *color.Color {
	c := color.New(color.Faint, color.FgWhite)
	switch {
	case d.OpenDue > 0:
		c = color.New(color.Bold, color.FgHiYellow)
	case d.HasEntry():
		c = color.New(color.Bold, color.FgHiWhite)
	}
	if d.IsToday {
		c.Add(color.Underline)
	}
	return c
}

// Agenda lists each day of the month that has something due or done.
func (pp *PrettyPrint) Agenda(mv viewmodel.MonthView) {
	w := pp.out()
	faint := color.New(color.Faint)
	found := false
	for _, d := range mv.Days {
		if !d.HasEntry() {
			continue
		}
		found = true
		day := color.New()
		if d.IsToday {
			day = color.New(color.Bold)
		}
		if d.Date.Weekday() == time.Sunday {
			day.Add(color.Underline)
		}
		_, _ = day.Fprintf(w, "%2d %s", d.Day, d.Date.Weekday().String()[0:1])
		_, _ = faint.Fprintf(w, "  %d due, %d open, %d habits done\n", d.TasksDue, d.OpenDue, d.HabitsDone)
	}
	if !found {
		_, _ = faint.Fprintln(w, "nothing scheduled")
	}
}
