package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entity"
)

type field int

const (
	fieldTitle field = iota
	fieldContent
	fieldDue
	fieldCategory
	fieldPriority
)

var fieldLabels = map[field]string{
	fieldTitle:    "Title",
	fieldContent:  "Content",
	fieldDue:      "Due",
	fieldCategory: "Category",
	fieldPriority: "Priority",
}

var errTitleRequired = errors.New("a title is required")

// form is the add/edit overlay for one entity.
type form struct {
	kind entity.Kind
	// id is empty when adding.
	id string

	title    textinput.Model
	content  textarea.Model
	due      textinput.Model
	category entity.Category
	priority entity.Priority

	fields []field
	focus  int
	// listening is set while a dictation is in flight.
	listening bool
	err       string
}

func newForm(kind entity.Kind, width int) *form {
	f := &form{
		kind:     kind,
		category: entity.Personal,
		priority: entity.Medium,
	}
	w := width - 20
	if w < 20 {
		w = 20
	}

	f.title = textinput.New()
	f.title.Placeholder = "What is it?"
	f.title.CharLimit = 200
	f.title.Width = w

	f.content = textarea.New()
	f.content.Placeholder = "Details"
	f.content.ShowLineNumbers = false
	f.content.SetWidth(w)
	f.content.SetHeight(4)

	f.due = textinput.New()
	f.due.Placeholder = entity.DueLayout
	f.due.CharLimit = len(entity.DueLayout)
	f.due.Width = w

	switch kind {
	case entity.KindNote:
		f.fields = []field{fieldTitle, fieldContent, fieldCategory}
	case entity.KindTask:
		f.fields = []field{fieldTitle, fieldDue, fieldCategory, fieldPriority}
	default:
		f.fields = []field{fieldTitle, fieldCategory}
	}
	return f
}

// editNote, editTask and editHabit fill the form from an existing entity.
func editNote(n entity.Note, width int) *form {
	f := newForm(entity.KindNote, width)
	f.id = n.ID
	f.title.SetValue(n.Title)
	f.content.SetValue(n.Content)
	f.category = n.Category
	return f
}

func editTask(t entity.Task, width int) *form {
	f := newForm(entity.KindTask, width)
	f.id = t.ID
	f.title.SetValue(t.Title)
	f.due.SetValue(t.DueDate)
	f.category = t.Category
	f.priority = t.Priority
	return f
}

func editHabit(h entity.Habit, width int) *form {
	f := newForm(entity.KindHabit, width)
	f.id = h.ID
	f.title.SetValue(h.Title)
	f.category = h.Category
	return f
}

func (f *form) current() field {
	return f.fields[f.focus]
}

// Focus focuses the active field and returns its blink command.
func (f *form) Focus() tea.Cmd {
	f.title.Blur()
	f.content.Blur()
	f.due.Blur()
	switch f.current() {
	case fieldTitle:
		return f.title.Focus()
	case fieldContent:
		return f.content.Focus()
	case fieldDue:
		return f.due.Focus()
	}
	return nil
}

func (f *form) move(delta int) tea.Cmd {
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	return f.Focus()
}

// cycle steps the category or priority selector.
func (f *form) cycle(delta int) {
	switch f.current() {
	case fieldCategory:
		f.category = step(entity.Categories(), f.category, delta)
	case fieldPriority:
		f.priority = step(entity.Priorities(), f.priority, delta)
	}
}

func step[T comparable](values []T, current T, delta int) T {
	for i, v := range values {
		if v == current {
			return values[(i+delta+len(values))%len(values)]
		}
	}
	return values[0]
}

// textField reports whether the focused field takes text input.
func (f *form) textField() bool {
	switch f.current() {
	case fieldTitle, fieldContent, fieldDue:
		return true
	}
	return false
}

// Update forwards msg to the focused input.
func (f *form) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.current() {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldContent:
		f.content, cmd = f.content.Update(msg)
	case fieldDue:
		f.due, cmd = f.due.Update(msg)
	}
	return cmd
}

func (f *form) value(fl field) string {
	switch fl {
	case fieldTitle:
		return f.title.Value()
	case fieldContent:
		return f.content.Value()
	case fieldDue:
		return f.due.Value()
	}
	return ""
}

func (f *form) setValue(fl field, v string) {
	switch fl {
	case fieldTitle:
		f.title.SetValue(v)
	case fieldContent:
		f.content.SetValue(v)
	case fieldDue:
		f.due.SetValue(v)
	}
}

// validate checks the required fields before anything reaches the
// controller.
func (f *form) validate() error {
	if strings.TrimSpace(f.title.Value()) == "" {
		return errTitleRequired
	}
	if due := strings.TrimSpace(f.due.Value()); f.kind == entity.KindTask && due != "" {
		if _, ok := entity.ParseDue(due, time.Local); !ok {
			return errors.New("due must look like " + entity.DueLayout)
		}
	}
	return nil
}

// submit adds or edits through the controller.
func (f *form) submit(c *app.Controller) error {
	if err := f.validate(); err != nil {
		return err
	}
	title := strings.TrimSpace(f.title.Value())
	content := f.content.Value()
	due := strings.TrimSpace(f.due.Value())
	category, priority := f.category, f.priority

	var err error
	switch {
	case f.kind == entity.KindNote && f.id == "":
		_, err = c.AddNote(app.NoteInput{Title: title, Content: content, Category: category})
	case f.kind == entity.KindNote:
		_, err = c.EditNote(f.id, app.NotePatch{Title: &title, Content: &content, Category: &category})
	case f.kind == entity.KindTask && f.id == "":
		_, err = c.AddTask(app.TaskInput{Title: title, Category: category, Priority: priority, DueDate: due})
	case f.kind == entity.KindTask:
		_, err = c.EditTask(f.id, app.TaskPatch{Title: &title, Category: &category, Priority: &priority, DueDate: &due})
	case f.id == "":
		_, err = c.AddHabit(app.HabitInput{Title: title, Category: category})
	default:
		_, err = c.EditHabit(f.id, app.HabitPatch{Title: &title, Category: &category})
	}
	return err
}

func (f *form) View(t Theme) string {
	verb := "New"
	if f.id != "" {
		verb = "Edit"
	}
	lines := []string{t.Modal.Title.Render(verb + " " + string(f.kind)), ""}
	for i, fl := range f.fields {
		label := t.Modal.Label.Render(fieldLabels[fl])
		if i == f.focus {
			label = t.Modal.Focus.Render(fieldLabels[fl])
		}
		var v string
		switch fl {
		case fieldTitle:
			v = f.title.View()
		case fieldContent:
			v = f.content.View()
		case fieldDue:
			v = f.due.View()
		case fieldCategory:
			v = t.Category(f.category).Render("‹ " + string(f.category) + " ›")
		case fieldPriority:
			v = "‹ " + string(f.priority) + " ›"
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label, v))
	}
	if f.listening {
		lines = append(lines, "", t.Status.Render("listening…"))
	}
	if f.err != "" {
		lines = append(lines, "", t.Error.Render(f.err))
	}
	return strings.Join(lines, "\n")
}
