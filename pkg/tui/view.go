package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/focus"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/state"
	"tableflip.dev/daybook/pkg/timeutil"
	"tableflip.dev/daybook/pkg/viewmodel"
)

var tabLabels = map[state.Tab]string{
	state.TabNotes:    "Notes",
	state.TabTasks:    "Tasks",
	state.TabHabits:   "Habits",
	state.TabCalendar: "Calendar",
}

func renderTab(t Theme, tab state.Tab, active bool) string {
	if active {
		return t.TabActive.Render(tabLabels[tab])
	}
	return t.Tab.Render(tabLabels[tab])
}

func tabWidth(t Theme, tab state.Tab, active bool) int {
	return lipgloss.Width(renderTab(t, tab, active))
}

func (m *Model) View() string {
	if m.mode == modeLocked {
		return m.place(m.lockView())
	}
	switch {
	case len(m.alerts) > 0:
		return m.place(m.alertView())
	case m.mode == modeForm && m.form != nil:
		return m.place(m.theme.Modal.Frame.Render(m.form.View(m.theme) + "\n\n" + m.help.View(formKeyMap{m.keys})))
	case m.mode == modeConfirm && m.pending != nil:
		return m.place(m.confirmView())
	case m.mode == modeHelp:
		return m.place(m.theme.Modal.Frame.Render(m.theme.Modal.Title.Render("Keys") + "\n\n" + m.help.FullHelpView(m.keys.FullHelp())))
	}

	lines := make([]string, 0, m.height)
	lines = append(lines, m.headerView(), m.searchView(), m.theme.Muted.Render(strings.Repeat("─", m.width)))
	lines = append(lines, m.bodyView()...)
	lines = append(lines, m.footerView()...)
	return strings.Join(lines, "\n")
}

func (m *Model) place(s string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func (m *Model) headerView() string {
	var tabs []string
	for _, t := range state.Tabs() {
		tabs = append(tabs, renderTab(m.theme, t, t == m.view.Tab))
	}
	left := strings.Join(tabs, "")

	var right string
	switch m.focus.Status() {
	case focus.Running:
		right = m.theme.Clock.Render("◷ " + timeutil.FormatClock(m.focus.Remaining(m.c.Now())))
	case focus.Paused:
		right = m.theme.Muted.Render("◷ " + timeutil.FormatClock(m.focus.Remaining(m.c.Now())) + " paused")
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) searchView() string {
	switch {
	case m.mode == modeSearch:
		return m.search.View()
	case m.view.Filter != "":
		return m.theme.Muted.Render(fmt.Sprintf("/ %s  (esc in search clears)", m.view.Filter))
	default:
		return m.theme.Muted.Render("/ to search")
	}
}

func (m *Model) bodyView() []string {
	h := m.listHeight()
	var lines []string
	switch {
	case m.view.Tab == state.TabCalendar && m.view.Calendar != nil:
		lines = m.calendarView(*m.view.Calendar)
	case m.view.Empty:
		msg := "Nothing here yet. Press a to add one."
		if m.view.Filter != "" {
			msg = fmt.Sprintf("No matches for %q.", m.view.Filter)
		}
		lines = []string{"", m.theme.Status.Render(msg)}
	default:
		end := m.offset + h
		if end > len(m.view.Items) {
			end = len(m.view.Items)
		}
		for i := m.offset; i < end; i++ {
			lines = append(lines, m.rowView(m.view.Items[i], i == m.cursor))
		}
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return lines
}

func markFor(it viewmodel.Item) glyph.Mark {
	switch {
	case it.Kind == entity.KindTask && it.Completed:
		return glyph.Completed
	case it.Kind == entity.KindHabit && it.DoneToday:
		return glyph.HabitDone
	default:
		return glyph.ForKind(it.Kind)
	}
}

func meta(it viewmodel.Item) []string {
	var parts []string
	if it.Badge != "" {
		parts = append(parts, it.Badge)
	}
	if it.Due != "" {
		parts = append(parts, "due "+it.DueRelative)
	}
	if it.Kind == entity.KindNote && it.Date != "" {
		parts = append(parts, it.Date)
	}
	return parts
}

func (m *Model) rowView(it viewmodel.Item, selected bool) string {
	width := m.width
	if width < 10 {
		width = 10
	}
	mark := markFor(it).String()

	// A row being dragged is drawn plain and shifted with the pointer.
	if g := m.gesture; g.Target().ID == it.ID && g.Offset() != 0 {
		plain := fmt.Sprintf("%s %s  [%s] %s", mark, it.Title, it.Category, strings.Join(meta(it), " · "))
		dx := g.Offset()
		if dx > 0 {
			plain = strings.Repeat(" ", dx) + plain
		} else if r := []rune(plain); -dx < len(r) {
			plain = string(r[-dx:])
		} else {
			plain = ""
		}
		style := m.theme.Swipe(dx, g.Config().SwipeThreshold, g.Target().AllowToggle)
		return style.Render(truncate.StringWithTail(plain, uint(width), "…"))
	}

	title := m.theme.Text.Render(it.Title)
	if it.Completed {
		title = m.theme.Done.Render(it.Title)
	}
	cat := m.theme.Category(it.Category).Render("[" + string(it.Category) + "]")
	info := m.theme.Muted.Render(strings.Join(meta(it), " · "))
	if it.Overdue {
		info = m.theme.Overdue.Render(strings.Join(meta(it), " · "))
	}
	line := fmt.Sprintf("%s %s  %s %s", mark, title, cat, info)
	line = truncate.StringWithTail(line, uint(width), "…")
	if selected {
		return m.theme.Selected.Width(width).Render(line)
	}
	return line
}

func (m *Model) calendarView(mv viewmodel.MonthView) []string {
	selected := 0
	now := m.c.Now()
	if mv.Month.Year() == now.Year() && mv.Month.Month() == now.Month() {
		selected = now.Day()
	}
	lines := []string{m.theme.Modal.Title.Render(mv.Title), ""}
	lines = append(lines, strings.Split(RenderCalendar(mv, selected, m.theme.Cal), "\n")...)
	lines = append(lines, "")
	if days := agenda(mv); len(days) > 0 {
		for _, d := range days {
			lines = append(lines, m.theme.Muted.Render(d))
		}
	} else {
		lines = append(lines, m.theme.Status.Render("nothing scheduled"))
	}
	return lines
}

func (m *Model) footerView() []string {
	detail := ""
	if it, ok := m.selected(); ok && m.view.Tab != state.TabCalendar {
		body := it.Body
		if body == "" && it.Due != "" {
			body = "due " + it.Due
		}
		if body != "" {
			first := strings.SplitN(wordwrap.String(body, m.width), "\n", 2)[0]
			detail = m.theme.Muted.Render(truncate.StringWithTail(first, uint(m.width), "…"))
		}
	}

	s := m.view.Stats
	stats := fmt.Sprintf("notes %d · tasks %d/%d · habits %d/%d today · best streak %d",
		s.TotalNotes, s.CompletedTasks, s.TotalTasks, s.HabitsDone, s.TotalHabits, s.BestStreak)
	status := m.theme.Muted.Render(stats)
	if m.status != "" {
		st := m.theme.Status
		if m.statusErr {
			st = m.theme.Error
		}
		status += "  " + st.Render(m.status)
	}
	return []string{detail, truncate.StringWithTail(status, uint(m.width), "…"), m.help.View(m.keys)}
}

func (m *Model) confirmView() string {
	p := m.pending
	body := wordwrap.String(fmt.Sprintf("Delete %s %q?", p.kind, p.title), 40)
	return m.theme.Modal.Frame.Render(
		m.theme.Modal.Title.Render("Confirm") + "\n\n" +
			m.theme.Modal.Body.Render(body) + "\n\n" +
			m.theme.Muted.Render("y delete · n keep"))
}

func (m *Model) alertView() string {
	n := m.alerts[0]
	body := wordwrap.String(n.Body, 40)
	more := ""
	if len(m.alerts) > 1 {
		more = fmt.Sprintf(" (%d more)", len(m.alerts)-1)
	}
	return m.theme.Modal.Frame.Render(
		m.theme.Modal.Title.Render("⏰ "+n.Title) + "\n\n" +
			m.theme.Modal.Body.Render(body) + "\n\n" +
			m.theme.Muted.Render("enter to dismiss"+more))
}

func (m *Model) lockView() string {
	lines := []string{m.theme.Modal.Title.Render("daybook is locked"), "", m.pin.View()}
	if m.status != "" && m.statusErr {
		lines = append(lines, "", m.theme.Error.Render(m.status))
	}
	return m.theme.Modal.Frame.Render(strings.Join(lines, "\n"))
}
