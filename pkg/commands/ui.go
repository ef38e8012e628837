package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the full-screen daybook",
		Long: `UI shows notes, tasks, habits and the calendar in one window.

Swipe a row left to delete it, swipe a task right to complete it and hold a
row to edit it. Press ? for the key list.`,
		Example: `
daybook ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
			defer stop()

			s, err := openSession(ctx, sessionOptions{Quiet: true, KeepLocked: true})
			if err != nil {
				return err
			}
			defer s.Close()

			u := ui.UI{
				Controller:       s.Controller,
				Center:           s.Center,
				Voice:            recognizer(true),
				ReminderInterval: cfg.ReminderInterval,
				FocusDuration:    cfg.FocusDuration,
				Log:              logger,
			}
			return u.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
