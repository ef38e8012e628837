package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change a note, task or habit",
		Example: `
daybook edit note 3f2a --title "weekly groceries"
daybook edit task 9c1 --due "2/28 9:00" -p low
daybook edit task 9c1 --no-due
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	for _, k := range entity.Kinds() {
		addEditKind(cmd, k)
	}

	topLevel.AddCommand(cmd)
}

func addEditKind(topLevel *cobra.Command, kind entity.Kind) {
	eo := &options.EntityOptions{}
	do := &options.DueOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:               string(kind) + " <id>",
		Short:             "Edit a " + string(kind),
		ValidArgsFunction: idCompletions(kind),
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires one " + string(kind) + " id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
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

			e := edit.Edit{
				Kind:       kind,
				ID:         args[0],
				Category:   category,
				Priority:   priority,
				Dictate:    recognizer(eo.Dictate),
				Controller: s.Controller,
			}
			if cmd.Flags().Changed("title") {
				e.Title = &eo.Title
			}
			if cmd.Flags().Changed("content") {
				e.Content = &eo.Content
			}
			if e.Due, err = do.GetDue(s.Controller.Now()); err != nil {
				return err
			}
			err = e.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddTitleArgs(cmd, eo)
	options.AddCategoryArgs(cmd, eo)
	switch kind {
	case entity.KindNote:
		options.AddContentArgs(cmd, eo)
	case entity.KindTask:
		options.AddPriorityArgs(cmd, eo)
		options.AddDueArgs(cmd, do)
		options.AddClearDueArgs(cmd, do)
	}
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
