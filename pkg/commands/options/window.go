package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/state"
)

// WindowOptions
type WindowOptions struct {
	Window string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions, def string) {
	cmd.Flags().StringVarP(&o.Window, "window", "w", def,
		`Time window to look back, example: --window=1w2d or --window="36h".`)
}

// MonthOptions
type MonthOptions struct {
	Offset int
	Agenda bool
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().IntVarP(&o.Offset, "offset", "m", 0,
		"Months from now; negative looks back.")
	cmd.Flags().BoolVarP(&o.Agenda, "agenda", "a", false,
		"List the days with activity below the grid.")
}

// ListOptions
type ListOptions struct {
	Tab    string
	Filter string
}

func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().StringVar(&o.Tab, "in", "",
		"Limit to one of notes, tasks or habits.")
}

// GetTabs returns the tabs to list, all list tabs when unset.
func (o *ListOptions) GetTabs() ([]state.Tab, error) {
	if o.Tab == "" {
		return []state.Tab{state.TabNotes, state.TabTasks, state.TabHabits}, nil
	}
	tab, ok := state.ParseTab(o.Tab)
	if !ok || tab == state.TabCalendar {
		return nil, fmt.Errorf("unknown list %q", o.Tab)
	}
	return []state.Tab{tab}, nil
}

// ExportOptions
type ExportOptions struct {
	Output string
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "yaml",
		"Output format. One of 'yaml' or 'json'.")
}

func (o *ExportOptions) Validate() error {
	switch o.Output {
	case "yaml", "json":
		return nil
	default:
		return fmt.Errorf("unknown output format %q", o.Output)
	}
}
