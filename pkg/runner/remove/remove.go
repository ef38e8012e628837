package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/state"
)

// Remove deletes one entity after the controller's confirmation.
type Remove struct {
	Kind entity.Kind
	ID   string

	Controller *app.Controller
	Out        io.Writer
}

func (r *Remove) Do(_ context.Context) error {
	c := r.Controller
	if c == nil {
		return app.ErrNoPersistence
	}
	out := r.Out
	if out == nil {
		out = color.Output
	}
	id, err := c.Resolve(r.Kind, r.ID)
	if errors.Is(err, app.ErrNotFound) {
		_, _ = fmt.Fprintf(out, "no %s matches %q\n", r.Kind, r.ID)
		return nil
	}
	if err != nil {
		return err
	}
	c.State.Tab = state.TabFor(r.Kind)
	removed, err := c.Delete(r.Kind, id)
	if err != nil {
		return err
	}
	if !removed {
		_, _ = color.New(color.Faint).Fprintf(out, "kept %s %s\n", r.Kind, id)
	}
	return nil
}
