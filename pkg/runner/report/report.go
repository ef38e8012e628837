package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/timeutil"
)

const defaultWindow = "1w"

// Report summarises the tasks and habit check-ins of a recent window.
type Report struct {
	Window string
	JSON   bool

	Controller *app.Controller
	Printer    *printers.PrettyPrint
	Out        io.Writer
}

func (r *Report) Do(_ context.Context) error {
	c := r.Controller
	if c == nil {
		return app.ErrNoPersistence
	}
	window, _, err := timeutil.ParseDuration(r.Window, defaultWindow)
	if err != nil {
		return err
	}
	until := c.Now()
	res := c.Report(until.Add(-window), until)

	if r.JSON {
		out := r.Out
		if out == nil {
			out = color.Output
		}
		b, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}
	pp := r.Printer
	if pp == nil {
		pp = printers.New(false)
	}
	pp.Report(res)
	return nil
}
