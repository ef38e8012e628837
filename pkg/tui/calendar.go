package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/daybook/pkg/viewmodel"
)

// CalendarOptions controls calendar styling.
type CalendarOptions struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// DefaultCalendarOptions returns the styling used for calendar rendering.
func DefaultCalendarOptions() CalendarOptions {
	return CalendarOptions{
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		EmptyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		EntryStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		ShowHeader:    true,
	}
}

// RenderCalendar produces a multi-line grid for mv. selected highlights one
// day of the month; zero selects nothing.
func RenderCalendar(mv viewmodel.MonthView, selected int, opts CalendarOptions) string {
	if mv.Month.IsZero() {
		return ""
	}

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}
	for _, week := range mv.Weeks() {
		cells := make([]string, 0, len(week))
		for _, d := range week {
			if d == nil {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(*d, d.Day == selected, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func renderDay(d viewmodel.Day, selected bool, opts CalendarOptions) string {
	text := fmt.Sprintf("%2d", d.Day)

	style := opts.EmptyStyle
	if d.HasEntry() {
		style = opts.EntryStyle
	}
	if d.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if selected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}

// agenda lists the days of mv that have something on them.
func agenda(mv viewmodel.MonthView) []string {
	var lines []string
	for _, d := range mv.Days {
		if !d.HasEntry() {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s  %d due, %d open, %d habits done",
			d.Date.Format("Mon Jan 2"), d.TasksDue, d.OpenDue, d.HabitsDone))
	}
	return lines
}
