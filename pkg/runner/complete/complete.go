package complete

import (
	"context"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/state"
)

// Complete toggles a task's completion or a habit's mark for today.
type Complete struct {
	Kind entity.Kind
	IDs  []string

	Controller *app.Controller
}

func (n *Complete) Do(_ context.Context) error {
	c := n.Controller
	if c == nil {
		return app.ErrNoPersistence
	}
	c.State.Tab = state.TabFor(n.Kind)
	for _, ref := range n.IDs {
		id, err := c.Resolve(n.Kind, ref)
		if err != nil {
			return err
		}
		if err := c.Toggle(n.Kind, id); err != nil {
			return err
		}
	}
	return nil
}
