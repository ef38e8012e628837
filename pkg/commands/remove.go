package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a note, task or habit",
		Example: `
daybook rm task 9c1
daybook rm note 3f2a --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	for _, k := range entity.Kinds() {
		addRemoveKind(cmd, k)
	}

	topLevel.AddCommand(cmd)
}

func addRemoveKind(topLevel *cobra.Command, kind entity.Kind) {
	co := &options.ConfirmOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:               string(kind) + " <id>",
		Short:             "Delete a " + string(kind),
		ValidArgsFunction: idCompletions(kind),
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires one " + string(kind) + " id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context(), sessionOptions{ShowID: io.ShowID, Yes: co.Yes})
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			r := remove.Remove{
				Kind:       kind,
				ID:         args[0],
				Controller: s.Controller,
			}
			err = r.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddConfirmArgs(cmd, co)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
