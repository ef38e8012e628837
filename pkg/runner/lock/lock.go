package lock

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
)

// ReadSecret reads a secret line for prompt without echo.
type ReadSecret func(prompt string) (string, error)

// Lock sets or clears the PIN.
type Lock struct {
	Clear bool

	Read       ReadSecret
	Controller *app.Controller
	Out        io.Writer
}

func (l *Lock) Do(_ context.Context) error {
	c := l.Controller
	if c == nil {
		return app.ErrNoPersistence
	}
	out := l.Out
	if out == nil {
		out = color.Output
	}
	if l.Clear {
		if err := c.ClearPIN(); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, "PIN cleared")
		return nil
	}
	if l.Read == nil {
		return errors.New("lock: no terminal to read the PIN from")
	}
	pin, err := l.Read("New PIN: ")
	if err != nil {
		return err
	}
	again, err := l.Read("Repeat PIN: ")
	if err != nil {
		return err
	}
	if pin != again {
		return errors.New("lock: PINs do not match")
	}
	if err := c.SetPIN(pin); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, "PIN set")
	return nil
}
