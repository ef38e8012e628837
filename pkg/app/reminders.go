package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tableflip.dev/daybook/pkg/entity"
	"tableflip.dev/daybook/pkg/reminder"
)

// ScanReminders fires one notification per newly due task, marks each as
// sent, then saves and re-renders if anything fired. Notification failures
// are logged and do not stop the scan.
func (c *Controller) ScanReminders(ctx context.Context) ([]entity.Task, error) {
	fired := reminder.Scan(c.State.Tasks, c.now())
	if len(fired) == 0 {
		return nil, nil
	}
	var errs []error
	for _, t := range fired {
		c.log.Info("app: reminder", zap.String("id", t.ID), zap.String("title", t.Title))
		if c.notifier == nil {
			continue
		}
		if err := c.notifier.Notify(ctx, reminder.Message(t)); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		c.log.Debug("app: reminder delivery failed", zap.Error(errors.Join(errs...)))
	}
	return fired, c.commit("reminder.scan")
}
