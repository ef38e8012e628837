// Package printers writes daybook views to a terminal.
package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/notify"
	"tableflip.dev/daybook/pkg/state"
	"tableflip.dev/daybook/pkg/viewmodel"
)

// PrettyPrint renders views as coloured text. It satisfies app.Renderer.
type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

const idWidth = 8

var spacing = strings.Repeat(" ", idWidth+2)

// New returns a printer writing to color.Output.
func New(showID bool) *PrettyPrint {
	return &PrettyPrint{ShowID: showID, Out: color.Output}
}

// ColorEnabled reports whether f is a terminal that should get colour.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " item")
	default:
		_, _ = c.Fprintln(pp.out(), " items")
	}
}

// Render commits a full view: a list for the list tabs, the month grid for
// the calendar.
func (pp *PrettyPrint) Render(v viewmodel.View) {
	if v.Calendar != nil {
		pp.Calendar(*v.Calendar)
		return
	}
	title := tabTitle(v.Tab)
	if v.Filter != "" {
		title = fmt.Sprintf("%s matching %q", title, v.Filter)
	}
	pp.TitleWithCount(title, len(v.Items))
	pp.Items(v.Items...)
}

func tabTitle(t state.Tab) string {
	if t == "" {
		t = state.TabNotes
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// Items prints list rows; an empty slice prints the empty state.
func (pp *PrettyPrint) Items(items ...viewmodel.Item) {
	w := pp.out()
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(w, spacing)
		}
		_, _ = f.Fprint(w, " nothing here\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)
	red := color.New(color.FgRed, color.Bold)

	for _, it := range items {
		if pp.ShowID {
			id := it.ID
			if len(id) > idWidth {
				id = id[:idWidth]
			}
			_, _ = y.Fprint(w, id)
			_, _ = y.Fprint(w, strings.Repeat(" ", len(spacing)-len(id)))
		}

		sig, mark := signifier(it), mark(it)
		title := it.Title
		if it.Completed && !color.NoColor {
			title = glyph.Strike(title)
		}
		sigColor := color.New()
		if sig == glyph.Overdue {
			sigColor = red
		}
		_, _ = sigColor.Fprint(w, sig.String())
		_, _ = fmt.Fprintf(w, " %s %s ", mark.String(), title)
		_, _ = CategoryColor(it.Category).Fprintf(w, "[%s]", it.Category)

		var meta []string
		if it.Kind == entity.KindHabit {
			meta = append(meta, it.Badge)
		}
		if it.Due != "" {
			meta = append(meta, fmt.Sprintf("due %s (%s)", it.Due, it.DueRelative))
		}
		if it.Kind == entity.KindNote && it.Date != "" {
			meta = append(meta, it.Date)
		}
		if len(meta) > 0 {
			_, _ = faint.Fprintf(w, " %s", strings.Join(meta, " · "))
		}
		_, _ = fmt.Fprintln(w)

		if it.Body != "" {
			for _, line := range strings.Split(it.Body, "\n") {
				if pp.ShowID {
					_, _ = fmt.Fprint(w, spacing)
				}
				_, _ = faint.Fprintf(w, "    %s\n", line)
			}
		}
	}
	_, _ = fmt.Fprintln(w, "")
}

func mark(it viewmodel.Item) glyph.Mark {
	switch {
	case it.Kind == entity.KindTask && it.Completed:
		return glyph.Completed
	case it.Kind == entity.KindHabit && it.DoneToday:
		return glyph.HabitDone
	default:
		return glyph.ForKind(it.Kind)
	}
}

func signifier(it viewmodel.Item) glyph.Mark {
	switch {
	case it.Overdue:
		return glyph.Overdue
	case it.Kind == entity.KindTask:
		return glyph.ForPriority(it.Priority)
	default:
		return glyph.None
	}
}

// CategoryColor picks the label colour for a category.
func CategoryColor(c entity.Category) *color.Color {
	switch c {
	case entity.Personal:
		return color.New(color.FgBlue)
	case entity.Work:
		return color.New(color.FgMagenta)
	case entity.Study:
		return color.New(color.FgGreen)
	case entity.Ideas:
		return color.New(color.FgYellow)
	default:
		return color.New(color.Faint)
	}
}

// Stats prints the derived counters as a table.
func (pp *PrettyPrint) Stats(s state.Stats) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Notes"), s.TotalNotes)
	tbl.AddRow(bold.Sprint("Tasks"), fmt.Sprintf("%d (%d completed)", s.TotalTasks, s.CompletedTasks))
	tbl.AddRow(bold.Sprint("Habits"), fmt.Sprintf("%d (%d done today)", s.TotalHabits, s.HabitsDone))
	tbl.AddRow(bold.Sprint("Best streak"), s.BestStreak)
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Legend prints the glyph key.
func (pp *PrettyPrint) Legend() {
	bold := color.New(color.Bold)
	for _, sig := range []bool{false, true} {
		tbl := uitable.New()
		tbl.Separator = "  "
		if sig {
			tbl.AddRow(bold.Sprint("Signifiers"), bold.Sprint("Meaning"))
		} else {
			tbl.AddRow(bold.Sprint("     Marks"), bold.Sprint("Meaning"))
		}
		for _, g := range glyph.DefaultGlyphs() {
			if g.Signifier == sig && g.Meaning != "none" {
				tbl.AddRow(g.Symbol, g.Meaning)
			}
		}
		tbl.RightAlign(0)
		_, _ = fmt.Fprintln(pp.out(), tbl)
		pp.NewLine()
	}
}

// Report prints a windowed activity report.
func (pp *PrettyPrint) Report(r app.ReportResult) {
	pp.Title(fmt.Sprintf("%s → %s", r.Since.Local().Format("Jan 2 15:04"), r.Until.Local().Format("Jan 2 15:04")))
	if len(r.Sections) == 0 {
		pp.Items()
		return
	}
	faint := color.New(color.Faint)
	for _, s := range r.Sections {
		_, _ = CategoryColor(s.Category).Add(color.Bold).Fprintln(pp.out(), s.Category)
		for _, t := range s.Tasks {
			m := glyph.Task
			if t.Completed {
				m = glyph.Completed
			}
			_, _ = fmt.Fprintf(pp.out(), "  %s %s ", m, t.Title)
			_, _ = faint.Fprintf(pp.out(), "due %s\n", t.DueDate)
		}
		for _, h := range s.Habits {
			_, _ = fmt.Fprintf(pp.out(), "  %s %s ", glyph.HabitDone, h.Habit.Title)
			_, _ = faint.Fprintf(pp.out(), "%d check-ins\n", h.Days)
		}
	}
	pp.NewLine()
	_, _ = faint.Fprintf(pp.out(), "%d tasks completed, %d habit check-ins\n", r.Completed, r.CheckIns)
}

// Alert writes a notification to stderr. It satisfies notify.Alerter.
func (pp *PrettyPrint) Alert(n notify.Notification) {
	bell := color.New(color.FgHiYellow, color.Bold)
	_, _ = bell.Fprintf(color.Error, "⏰ %s: ", n.Title)
	_, _ = fmt.Fprintln(color.Error, n.Body)
}
