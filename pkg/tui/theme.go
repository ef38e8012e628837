package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/state"
)

// Theme centralizes Lip Gloss styles for the terminal UI.
type Theme struct {
	Name state.Theme

	Background colorful.Color
	Foreground colorful.Color

	Tab       lipgloss.Style
	TabActive lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Selected  lipgloss.Style
	Done      lipgloss.Style
	Overdue   lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Clock     lipgloss.Style

	Modal ModalTheme
	Cal   CalendarOptions

	categories map[entity.Category]colorful.Color
	danger     colorful.Color
	success    colorful.Color
}

// ModalTheme styles centered overlays.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Label lipgloss.Style
	Focus lipgloss.Style
}

type palette struct {
	bg, fg, muted, accent, selected string
}

var palettes = map[state.Theme]palette{
	state.ThemeLight: {bg: "#f4f5f6", fg: "#101f38", muted: "#8a94a6", accent: "#3f51b5", selected: "#e1e4e8"},
	state.ThemeDark:  {bg: "#141d2b", fg: "#f2f2f2", muted: "#6b7a90", accent: "#8bc34a", selected: "#2a3850"},
}

var categoryHex = map[entity.Category]string{
	entity.Personal: "#2196f3",
	entity.Work:     "#e53935",
	entity.Study:    "#43a047",
	entity.Ideas:    "#ffc107",
}

// DetectTheme picks dark when the terminal reports a dark background.
func DetectTheme() state.Theme {
	if termenv.HasDarkBackground() {
		return state.ThemeDark
	}
	return state.ThemeLight
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

func lg(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Clamped().Hex())
}

// ThemeFor builds the styles for name; unknown names get the light theme.
func ThemeFor(name state.Theme) Theme {
	p, ok := palettes[name]
	if !ok {
		name = state.ThemeLight
		p = palettes[name]
	}
	bg, fg := mustHex(p.bg), mustHex(p.fg)
	accent := mustHex(p.accent)
	muted := lipgloss.Color(p.muted)

	t := Theme{
		Name:       name,
		Background: bg,
		Foreground: fg,

		Tab:       lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Foreground(lg(accent)).Bold(true).Underline(true).Padding(0, 1),
		Text:      lipgloss.NewStyle().Foreground(lg(fg)),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Selected:  lipgloss.NewStyle().Background(lipgloss.Color(p.selected)).Bold(true),
		Done:      lipgloss.NewStyle().Foreground(lg(fg.BlendLab(bg, 0.55))).Strikethrough(true),
		Overdue:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")).Bold(true),
		Status:    lipgloss.NewStyle().Foreground(muted).Italic(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")),
		Clock:     lipgloss.NewStyle().Foreground(lg(accent)).Bold(true),

		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lg(accent)).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true).Foreground(lg(accent)),
			Body:  lipgloss.NewStyle().Foreground(lg(fg)),
			Label: lipgloss.NewStyle().Foreground(muted).Width(10),
			Focus: lipgloss.NewStyle().Foreground(lg(accent)).Bold(true).Width(10),
		},

		categories: make(map[entity.Category]colorful.Color, len(categoryHex)),
		danger:     mustHex("#e53935"),
		success:    mustHex("#43a047"),
	}
	for cat, hex := range categoryHex {
		c := mustHex(hex)
		if name == state.ThemeLight {
			// Darken slightly so yellow stays legible on a light background.
			c = c.BlendLab(fg, 0.25)
		}
		t.categories[cat] = c
	}

	t.Cal = DefaultCalendarOptions()
	t.Cal.HeaderStyle = t.Muted.Bold(true)
	t.Cal.EmptyStyle = t.Muted
	t.Cal.EntryStyle = t.Text.Bold(true)
	t.Cal.SelectedStyle = lipgloss.NewStyle().Background(lg(accent)).Foreground(lg(bg))
	return t
}

// Category returns the style for a category tag.
func (t Theme) Category(c entity.Category) lipgloss.Style {
	col, ok := t.categories[c]
	if !ok {
		return t.Muted
	}
	return lipgloss.NewStyle().Foreground(lg(col))
}

// Swipe tints a row being dragged: towards red when deleting and green when
// toggling, proportional to how far it travelled towards the threshold.
func (t Theme) Swipe(offset, threshold int, allowToggle bool) lipgloss.Style {
	if offset == 0 || threshold <= 0 {
		return t.Text
	}
	target := t.danger
	if offset > 0 {
		if !allowToggle {
			return t.Muted
		}
		target = t.success
	}
	frac := float64(abs(offset)) / float64(threshold)
	if frac > 1 {
		frac = 1
	}
	return lipgloss.NewStyle().Foreground(lg(t.Foreground.BlendLab(target, frac)))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
