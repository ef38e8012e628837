package commands

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/config"
	"tableflip.dev/daybook/pkg/logging"
	"tableflip.dev/daybook/pkg/printers"
)

var (
	output  = &base.OutputOptions{}
	verbose bool

	cfg    *config.Config
	logger = zap.NewNop()
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "daybook",
		Short: base.Wrap80("Notes, tasks, habits and a calendar on the command line."),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if cfg, err = config.Load(); err != nil {
				return err
			}
			if !printers.ColorEnabled(os.Stdout) {
				color.NoColor = true
			}
			l, err := logging.New(logging.Options{
				Level:   cfg.LogLevel,
				File:    cfg.LogFile,
				Verbose: verbose,
				Quiet:   cmd.Name() == "ui",
			})
			logger = l
			if err != nil {
				logger.Warn("logging misconfigured", zap.Error(err))
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addComplete(topLevel)
	addGet(topLevel)
	addSearch(topLevel)
	addStats(topLevel)
	addCalendar(topLevel)
	addRemind(topLevel)
	addFocus(topLevel)
	addTheme(topLevel)
	addLock(topLevel)
	addExport(topLevel)
	addReport(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
