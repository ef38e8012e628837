// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/entity"
)

// EntityOptions carries the form fields shared by add and edit.
type EntityOptions struct {
	Title    string
	Content  string
	Category string
	Priority string
	Dictate  bool
}

func AddCategoryArgs(cmd *cobra.Command, o *EntityOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Category: Personal, Work, Study or Ideas.")
	_ = cmd.RegisterFlagCompletionFunc("category", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var out []string
		for _, c := range entity.Categories() {
			out = append(out, string(c))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})
}

func AddPriorityArgs(cmd *cobra.Command, o *EntityOptions) {
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"Priority: Low, Medium or High.")
	_ = cmd.RegisterFlagCompletionFunc("priority", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var out []string
		for _, p := range entity.Priorities() {
			out = append(out, string(p))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})
}

func AddContentArgs(cmd *cobra.Command, o *EntityOptions) {
	cmd.Flags().StringVar(&o.Content, "content", "",
		"Body text of the note.")
	cmd.Flags().BoolVar(&o.Dictate, "dictate", false,
		"Append dictated speech to the content using voice.command.")
}

func AddTitleArgs(cmd *cobra.Command, o *EntityOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"New title.")
}

// GetCategory parses the category flag; empty means unset.
func (o *EntityOptions) GetCategory() (*entity.Category, error) {
	if o.Category == "" {
		return nil, nil
	}
	c, ok := entity.ParseCategory(o.Category)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", o.Category)
	}
	return &c, nil
}

// GetPriority parses the priority flag; empty means unset.
func (o *EntityOptions) GetPriority() (*entity.Priority, error) {
	if o.Priority == "" {
		return nil, nil
	}
	p, ok := entity.ParsePriority(o.Priority)
	if !ok {
		return nil, fmt.Errorf("unknown priority %q", o.Priority)
	}
	return &p, nil
}
