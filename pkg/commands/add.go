package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note, task or habit",
		Example: `
daybook add note groceries --content "milk, eggs"
daybook add task pay rent --due 2024-02-01T09:00 -p high
daybook add habit read -c study
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	for _, k := range entity.Kinds() {
		addAddKind(cmd, k)
	}

	topLevel.AddCommand(cmd)
}

func addAddKind(topLevel *cobra.Command, kind entity.Kind) {
	eo := &options.EntityOptions{}
	do := &options.DueOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     string(kind) + " <title>",
		Aliases: []string{string(kind) + "s"},
		Short:   "Add a " + string(kind),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a " + string(kind) + " title")
			}
			eo.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			category, err := eo.GetCategory()
			if err != nil {
				return err
			}
			priority, err := eo.GetPriority()
			if err != nil {
				return err
			}
			s, err := openSession(cmd.Context(), sessionOptions{ShowID: io.ShowID})
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			a := add.Add{
				Kind:       kind,
				Title:      eo.Title,
				Content:    eo.Content,
				Dictate:    recognizer(eo.Dictate),
				Controller: s.Controller,
			}
			if category != nil {
				a.Category = *category
			}
			if priority != nil {
				a.Priority = *priority
			}
			due, err := do.GetDue(s.Controller.Now())
			if err != nil {
				return err
			}
			if due != nil {
				a.Due = *due
			}
			err = a.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddCategoryArgs(cmd, eo)
	switch kind {
	case entity.KindNote:
		options.AddContentArgs(cmd, eo)
	case entity.KindTask:
		options.AddPriorityArgs(cmd, eo)
		options.AddDueArgs(cmd, do)
	}
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
