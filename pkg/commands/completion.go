package commands

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/config"
	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/state"
	"tableflip.dev/daybook/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(daybook completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(daybook completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// idCompletions offers the ids of kind with their titles as descriptions. A
// locked daybook completes nothing.
func idCompletions(kind entity.Kind) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return entityCompletions(kind, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

func entityCompletions(kind entity.Kind, toComplete string) []string {
	if cfg == nil {
		var err error
		if cfg, err = config.Load(); err != nil {
			return nil
		}
	}
	kv, err := store.Open(cfg.StoreOptions())
	if err != nil {
		return nil
	}
	defer kv.Close()

	s := state.New(logger)
	s.Load(kv, time.Now())
	if s.Locked() {
		return nil
	}
	var out []string
	add := func(id, title string) {
		if strings.HasPrefix(id, toComplete) {
			out = append(out, id+"\t"+title)
		}
	}
	switch kind {
	case entity.KindNote:
		for _, n := range s.Notes {
			add(n.ID, n.Title)
		}
	case entity.KindTask:
		for _, t := range s.Tasks {
			add(t.ID, t.Title)
		}
	case entity.KindHabit:
		for _, h := range s.Habits {
			add(h.ID, h.Title)
		}
	}
	return out
}
