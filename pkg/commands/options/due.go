package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/entity"
)

const (
	layoutShort     = "1/2"
	layoutShortTime = "1/2 15:04"
)

// DueOptions
type DueOptions struct {
	DueString string
	Clear     bool
}

func AddDueArgs(cmd *cobra.Command, o *DueOptions) {
	cmd.Flags().StringVar(&o.DueString, "due", "",
		`Due date, example: --due="2024-02-28T09:00", --due="2024-02-28" or --due="2/28 9:00".`)
}

func AddClearDueArgs(cmd *cobra.Command, o *DueOptions) {
	cmd.Flags().BoolVar(&o.Clear, "no-due", false,
		"Remove the due date.")
}

// GetDue normalises the flag to the stored due layout. Nil means the flag was
// not given; an empty string clears the due date.
func (o *DueOptions) GetDue(now time.Time) (*string, error) {
	if o.Clear {
		empty := ""
		return &empty, nil
	}
	if o.DueString == "" {
		return nil, nil
	}
	if t, ok := entity.ParseDue(o.DueString, time.Local); ok {
		s := entity.FormatDue(t.Local())
		return &s, nil
	}
	for _, layout := range []string{layoutShortTime, layoutShort} {
		t, err := time.ParseInLocation(layout, o.DueString, time.Local)
		if err != nil {
			continue
		}
		t = t.AddDate(now.Year(), 0, 0)
		// A short date that already passed this year means next year.
		if t.Before(now) && t.Format("01-02") != now.Format("01-02") {
			t = t.AddDate(1, 0, 0)
		}
		s := entity.FormatDue(t)
		return &s, nil
	}
	return nil, fmt.Errorf("cannot parse due date %q", o.DueString)
}
