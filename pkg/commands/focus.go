package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/config"
	"tableflip.dev/daybook/pkg/notify"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/runner/focus"
	"tableflip.dev/daybook/pkg/timeutil"
)

func addFocus(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:     "focus",
		Aliases: []string{"pomodoro"},
		Short:   "Run a focus countdown",
		Example: `
daybook focus
daybook focus -w 50m
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if cfg == nil {
				var err error
				if cfg, err = config.Load(); err != nil {
					return err
				}
			}
			d := cfg.FocusDuration
			if wo.Window != "" {
				var err error
				if d, _, err = timeutil.ParseDuration(wo.Window, ""); err != nil {
					return err
				}
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			center := notify.NewCenter(desktop(), printers.New(false), logger)
			center.RequestPermission(ctx)
			f := focus.Focus{
				Duration: d,
				Notifier: center,
			}
			err := f.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo, "")

	topLevel.AddCommand(cmd)
}
