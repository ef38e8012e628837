package calendar

import (
	"context"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/state"
	"tableflip.dev/daybook/pkg/viewmodel"
)

// Calendar prints a month grid, offset from the current month.
type Calendar struct {
	Offset int
	Agenda bool

	Controller *app.Controller
	Printer    *printers.PrettyPrint
}

func (n *Calendar) Do(_ context.Context) error {
	c := n.Controller
	if c == nil {
		return app.ErrNoPersistence
	}
	c.State.Tab = state.TabCalendar
	c.ShiftMonth(n.Offset)
	if n.Agenda && n.Printer != nil {
		month := c.State.Month
		if month.IsZero() {
			month = c.Now()
		}
		n.Printer.Agenda(viewmodel.Month(c.State, month, c.Now()))
	}
	return nil
}
