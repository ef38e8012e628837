package app

import (
	"fmt"
	"time"

	"tableflip.dev/daybook/pkg/state"
	"tableflip.dev/daybook/pkg/viewmodel"
)

// SetFilter changes the search text and re-renders.
func (c *Controller) SetFilter(filter string) {
	c.State.Filter = filter
	c.Render()
}

// SwitchTab activates tab and re-renders.
func (c *Controller) SwitchTab(tab state.Tab) {
	c.State.Tab = tab
	c.Render()
}

// ShiftMonth moves the calendar by delta months; zero returns to the
// current month.
func (c *Controller) ShiftMonth(delta int) {
	if delta == 0 {
		c.State.Month = time.Time{}
	} else {
		month := c.State.Month
		if month.IsZero() {
			month = c.now()
		}
		c.State.Month = viewmodel.ShiftMonth(month, delta)
	}
	c.Render()
}

// ToggleTheme flips and persists the theme.
func (c *Controller) ToggleTheme() (state.Theme, error) {
	return c.SetTheme(c.State.Theme.Toggle())
}

// SetTheme persists theme and re-renders.
func (c *Controller) SetTheme(theme state.Theme) (state.Theme, error) {
	if theme != state.ThemeLight && theme != state.ThemeDark {
		return c.State.Theme, fmt.Errorf("app: unknown theme %q", theme)
	}
	c.State.Theme = theme
	c.Render()
	if c.Storage == nil {
		return theme, ErrNoPersistence
	}
	if err := c.State.SaveTheme(c.Storage); err != nil {
		return theme, fmt.Errorf("app: save: %w", err)
	}
	return theme, nil
}

// Locked reports whether a PIN guards the data.
func (c *Controller) Locked() bool {
	return c.State.Locked()
}

// Unlock checks pin against the stored hash.
func (c *Controller) Unlock(pin string) error {
	return c.State.CheckPIN(pin)
}

// SetPIN stores a new PIN.
func (c *Controller) SetPIN(pin string) error {
	if c.Storage == nil {
		return ErrNoPersistence
	}
	return c.State.SetPIN(c.Storage, pin)
}

// ClearPIN removes the PIN.
func (c *Controller) ClearPIN() error {
	if c.Storage == nil {
		return ErrNoPersistence
	}
	return c.State.ClearPIN(c.Storage)
}
