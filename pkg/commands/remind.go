package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/runner/remind"
)

func addRemind(topLevel *cobra.Command) {
	var (
		watch    bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Notify about tasks that are due",
		Long: `Remind fires one notification for every open task whose due time has
passed. With --watch it keeps scanning at reminder.interval until interrupted.`,
		Example: `
daybook remind
daybook remind --watch --interval 30s
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context(), sessionOptions{Quiet: true})
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			if interval <= 0 {
				interval = cfg.ReminderInterval
			}
			r := remind.Remind{
				Watch:      watch,
				Interval:   interval,
				Controller: s.Controller,
				Log:        logger,
			}
			err = r.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep scanning until interrupted.")
	cmd.Flags().DurationVar(&interval, "interval", 0, "Scan interval; defaults to reminder.interval.")

	topLevel.AddCommand(cmd)
}
