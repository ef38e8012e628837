package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/runner/theme"
	"tableflip.dev/daybook/pkg/state"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Toggle or set the interface theme",
		Example: `
daybook theme
daybook theme dark
`,
		ValidArgs: []string{string(state.ThemeLight), string(state.ThemeDark)},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context(), sessionOptions{Quiet: true})
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			t := theme.Theme{Controller: s.Controller}
			if len(args) == 1 {
				t.Set = args[0]
			}
			err = t.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
