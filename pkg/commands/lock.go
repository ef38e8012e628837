package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/runner/lock"
)

func addLock(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Guard the daybook with a PIN",
		Long: `Lock sets a PIN that every later command asks for. Non-interactive use
reads it from DAYBOOK_PIN.`,
		Example: `
daybook lock set
daybook lock clear
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addLockAction(cmd, false)
	addLockAction(cmd, true)

	topLevel.AddCommand(cmd)
}

func addLockAction(topLevel *cobra.Command, remove bool) {
	use, short := "set", "Set or change the PIN"
	if remove {
		use, short = "clear", "Remove the PIN"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context(), sessionOptions{Quiet: true})
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			l := lock.Lock{
				Clear:      remove,
				Read:       readSecret,
				Controller: s.Controller,
			}
			err = l.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
