package get

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/state"
	"tableflip.dev/daybook/pkg/viewmodel"
)

// Get lists one or more tabs, optionally filtered.
type Get struct {
	Tabs   []state.Tab
	Filter string
	Output string

	Controller *app.Controller
	Out        io.Writer
}

func (g *Get) Do(_ context.Context) error {
	c := g.Controller
	if c == nil {
		return app.ErrNoPersistence
	}
	c.State.Filter = g.Filter
	if g.Output != "json" {
		for _, tab := range g.Tabs {
			c.SwitchTab(tab)
		}
		return nil
	}

	out := g.Out
	if out == nil {
		out = color.Output
	}
	views := make(map[state.Tab][]viewmodel.Item, len(g.Tabs))
	for _, tab := range g.Tabs {
		c.State.Tab = tab
		items := c.View().Items
		if items == nil {
			items = []viewmodel.Item{}
		}
		views[tab] = items
	}
	b, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}
