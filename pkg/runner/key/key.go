package key

import (
	"context"

	"tableflip.dev/daybook/pkg/printers"
)

// Key prints the glyph legend.
type Key struct {
	Printer *printers.PrettyPrint
}

func (k *Key) Do(_ context.Context) error {
	pp := k.Printer
	if pp == nil {
		pp = printers.New(false)
	}
	pp.Legend()
	return nil
}
