package commands

import (
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/get"
	"tableflip.dev/daybook/pkg/state"
)

func addGet(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "ls [notes|tasks|habits]",
		Aliases: []string{"get", "list"},
		Short:   "List notes, tasks and habits",
		Example: `
daybook ls
daybook ls tasks
daybook ls --in habits -k
`,
		ValidArgs: []string{string(state.TabNotes), string(state.TabTasks), string(state.TabHabits)},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) == 1 {
				lo.Tab = args[0]
			}
			return runGet(cmd, lo, io)
		},
	}

	options.AddListArgs(cmd, lo)
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addSearch(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "search <text>",
		Aliases: []string{"find"},
		Short:   "Filter every list by text",
		Example: `
daybook search rent
daybook search "pay rent" --in tasks
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			lo.Filter = strings.Join(args, " ")
			return runGet(cmd, lo, io)
		},
	}

	options.AddListArgs(cmd, lo)
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, lo *options.ListOptions, io *options.IDOptions) error {
	tabs, err := lo.GetTabs()
	if err != nil {
		return err
	}
	s, err := openSession(cmd.Context(), sessionOptions{ShowID: io.ShowID})
	if err != nil {
		return output.HandleError(err)
	}
	defer s.Close()

	g := get.Get{
		Tabs:       tabs,
		Filter:     lo.Filter,
		Output:     outputFormat(),
		Controller: s.Controller,
	}
	err = g.Do(cmd.Context())
	return output.HandleError(err)
}

func outputFormat() string {
	if output.JSON {
		return "json"
	}
	return ""
}
