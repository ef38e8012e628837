package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/state"
)

// Document is the exported form of all collections.
type Document struct {
	Theme  state.Theme    `json:"theme" yaml:"theme"`
	Stats  state.Stats    `json:"stats" yaml:"stats"`
	Notes  []entity.Note  `json:"notes" yaml:"notes"`
	Tasks  []entity.Task  `json:"tasks" yaml:"tasks"`
	Habits []entity.Habit `json:"habits" yaml:"habits"`
}

// Export writes every collection as yaml or json.
type Export struct {
	Output string

	Controller *app.Controller
	Out        io.Writer
}

func (e *Export) Do(_ context.Context) error {
	c := e.Controller
	if c == nil {
		return app.ErrNoPersistence
	}
	out := e.Out
	if out == nil {
		out = color.Output
	}
	doc := Document{
		Theme:  c.State.Theme,
		Stats:  c.Stats(),
		Notes:  c.State.Notes,
		Tasks:  c.State.Tasks,
		Habits: c.State.Habits,
	}
	switch e.Output {
	case "json":
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	case "yaml", "":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("export: unknown output %q", e.Output)
	}
}
