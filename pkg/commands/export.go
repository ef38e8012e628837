package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every note, task and habit to stdout",
		Example: `
daybook export > daybook.yaml
daybook export -o json
`,
		Args: cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return eo.Validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context(), sessionOptions{Quiet: true})
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			e := export.Export{
				Output:     eo.Output,
				Controller: s.Controller,
			}
			err = e.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddExportArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}
