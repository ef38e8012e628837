package theme

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/state"
)

// Theme toggles the theme, or sets it when Set is given.
type Theme struct {
	Set string

	Controller *app.Controller
	Out        io.Writer
}

func (t *Theme) Do(_ context.Context) error {
	c := t.Controller
	if c == nil {
		return app.ErrNoPersistence
	}
	var (
		theme state.Theme
		err   error
	)
	if t.Set == "" {
		theme, err = c.ToggleTheme()
	} else {
		theme, err = c.SetTheme(state.Theme(t.Set))
	}
	if err != nil {
		return err
	}
	out := t.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "theme: %s\n", theme)
	return nil
}
