package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "done",
		Aliases: []string{"complete", "check"},
		Short:   "Toggle a task's completion or a habit for today",
		Example: `
daybook done task 9c1
daybook done habit 71e 04b
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCompleteKind(cmd, entity.KindTask)
	addCompleteKind(cmd, entity.KindHabit)

	topLevel.AddCommand(cmd)
}

func addCompleteKind(topLevel *cobra.Command, kind entity.Kind) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:               string(kind) + " <id>...",
		Aliases:           []string{string(kind) + "s"},
		Short:             "Toggle " + string(kind) + "s",
		ValidArgsFunction: idCompletions(kind),
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a " + string(kind) + " id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context(), sessionOptions{ShowID: io.ShowID})
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			c := complete.Complete{
				Kind:       kind,
				IDs:        args,
				Controller: s.Controller,
			}
			err = c.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
