package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/report"
)

func addReport(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Tasks due and habit check-ins grouped by category",
		Long: `Report lists the tasks due and the habit days checked within the window,
grouped by category.

Examples:
  daybook report
  daybook report --window 3d
  daybook report -w 1w2d`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context(), sessionOptions{Quiet: true})
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			r := report.Report{
				Window:     wo.Window,
				JSON:       output.JSON,
				Controller: s.Controller,
				Printer:    s.Printer,
			}
			err = r.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo, "1w")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
