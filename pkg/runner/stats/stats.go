package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/printers"
)

// Stats prints the derived counters.
type Stats struct {
	Output string

	Controller *app.Controller
	Printer    *printers.PrettyPrint
	Out        io.Writer
}

func (s *Stats) Do(_ context.Context) error {
	if s.Controller == nil {
		return app.ErrNoPersistence
	}
	st := s.Controller.Stats()
	if s.Output == "json" {
		out := s.Out
		if out == nil {
			out = color.Output
		}
		b, err := json.Marshal(st)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}
	pp := s.Printer
	if pp == nil {
		pp = printers.New(false)
	}
	pp.Stats(st)
	return nil
}
