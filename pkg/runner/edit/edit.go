package edit

import (
	"context"
	"fmt"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/state"
	"tableflip.dev/daybook/pkg/voice"
)

// Edit merges the given fields into one entity. Nil fields are unchanged.
type Edit struct {
	Kind     entity.Kind
	ID       string
	Title    *string
	Content  *string
	Category *entity.Category
	Priority *entity.Priority
	Due      *string
	Dictate  voice.Recognizer

	Controller *app.Controller
}

func (e *Edit) Do(ctx context.Context) error {
	c := e.Controller
	if c == nil {
		return app.ErrNoPersistence
	}
	id, err := c.Resolve(e.Kind, e.ID)
	if err != nil {
		return err
	}
	c.State.Tab = state.TabFor(e.Kind)

	switch e.Kind {
	case entity.KindNote:
		if e.Dictate != nil {
			current, _ := c.Note(id)
			base := current.Content
			if e.Content != nil {
				base = *e.Content
			}
			text, err := voice.Dictate(ctx, e.Dictate, base)
			if err != nil {
				return err
			}
			e.Content = &text
		}
		_, err = c.EditNote(id, app.NotePatch{Title: e.Title, Content: e.Content, Category: e.Category})
	case entity.KindTask:
		_, err = c.EditTask(id, app.TaskPatch{Title: e.Title, Category: e.Category, Priority: e.Priority, DueDate: e.Due})
	case entity.KindHabit:
		_, err = c.EditHabit(id, app.HabitPatch{Title: e.Title, Category: e.Category})
	default:
		err = fmt.Errorf("edit: unknown kind %q", e.Kind)
	}
	return err
}
