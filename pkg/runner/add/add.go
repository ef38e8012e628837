package add

import (
	"context"
	"fmt"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/state"
	"tableflip.dev/daybook/pkg/voice"
)

// Add creates one entity and lets the controller render its list.
type Add struct {
	Kind     entity.Kind
	Title    string
	Content  string
	Category entity.Category
	Priority entity.Priority
	Due      string
	// Dictate, when set, appends recognised speech to the note content.
	Dictate voice.Recognizer

	Controller *app.Controller
}

func (n *Add) Do(ctx context.Context) error {
	if n.Controller == nil {
		return app.ErrNoPersistence
	}
	content := n.Content
	if n.Dictate != nil {
		var err error
		if content, err = voice.Dictate(ctx, n.Dictate, content); err != nil {
			return err
		}
	}

	n.Controller.State.Tab = state.TabFor(n.Kind)
	var err error
	switch n.Kind {
	case entity.KindNote:
		_, err = n.Controller.AddNote(app.NoteInput{Title: n.Title, Content: content, Category: n.Category})
	case entity.KindTask:
		_, err = n.Controller.AddTask(app.TaskInput{Title: n.Title, Category: n.Category, Priority: n.Priority, DueDate: n.Due})
	case entity.KindHabit:
		_, err = n.Controller.AddHabit(app.HabitInput{Title: n.Title, Category: n.Category})
	default:
		err = fmt.Errorf("add: unknown kind %q", n.Kind)
	}
	return err
}
