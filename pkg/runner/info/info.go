package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/config"
	"tableflip.dev/daybook/pkg/store"
)

// Info describes where and how daybook keeps its state.
type Info struct {
	Config  *config.Config
	Storage store.Storage
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("DAYBOOK_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "DAYBOOK_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "DAYBOOK_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = config.Load()
		if err != nil {
			return err
		}
	}
	if n.Config.File != "" {
		_, _ = fmt.Fprintln(out, "Config.file:", n.Config.File)
	}
	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.Path)
	_, _ = fmt.Fprintln(out, "Config.backend:", n.Config.Backend)

	if n.Storage == nil {
		return fmt.Errorf("failed to create storage for %s", n.Config.Path)
	}

	keys, err := n.Storage.Keys()
	if err != nil {
		return err
	}
	sort.Strings(keys)
	_, _ = fmt.Fprintln(out, "Keys:")
	if len(keys) == 0 {
		_, _ = fmt.Fprintln(out, "  no keys")
	}
	for _, k := range keys {
		v, err := n.Storage.Read(k)
		if err != nil {
			_, _ = fmt.Fprintf(out, "  %s (%v)\n", k, err)
			continue
		}
		_, _ = fmt.Fprintf(out, "  %-8s %s\n", k, humanize.Bytes(uint64(len(v))))
	}
	return nil
}
