package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show a month with due tasks and completed habits",
		Example: `
daybook calendar
daybook cal -m -1 --agenda
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context(), sessionOptions{})
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			c := calendar.Calendar{
				Offset:     mo.Offset,
				Agenda:     mo.Agenda,
				Controller: s.Controller,
				Printer:    s.Printer,
			}
			err = c.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
