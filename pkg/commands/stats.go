package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Counts of notes, tasks, habits and the best streak",
		Example: `
daybook stats
daybook stats --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context(), sessionOptions{Quiet: true})
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			st := stats.Stats{
				Output:     outputFormat(),
				Controller: s.Controller,
				Printer:    s.Printer,
			}
			err = st.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
