// Package notify delivers reminder and timer notifications. Every
// notification raises an alert; a desktop notification is sent as well when
// permission was granted.
package notify

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	"go.uber.org/zap"
)

// ErrUnsupported is returned when the platform has no desktop notifier.
var ErrUnsupported = errors.New("notify: desktop notifications unsupported")

// Permission is the outcome of a permission request.
type Permission int

const (
	Unknown Permission = iota
	Granted
	Denied
	Unsupported
)

func (p Permission) String() string {
	switch p {
	case Granted:
		return "granted"
	case Denied:
		return "denied"
	case Unsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Notification is a single message.
type Notification struct {
	Title string
	Body  string
}

// Notifier fires notifications.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Desktop is a platform notification channel.
type Desktop interface {
	RequestPermission(ctx context.Context) Permission
	Send(ctx context.Context, n Notification) error
}

// Alerter shows the blocking fallback message.
type Alerter interface {
	Alert(n Notification)
}

// AlertFunc adapts a function to Alerter.
type AlertFunc func(n Notification)

func (f AlertFunc) Alert(n Notification) { f(n) }

// Center combines the alert with an optional desktop channel.
type Center struct {
	desktop Desktop
	alert   Alerter
	perm    Permission
	asked   bool
	log     *zap.Logger
}

// NewCenter builds a Center. A nil desktop means desktop notifications are
// disabled and permission is always Denied.
func NewCenter(desktop Desktop, alert Alerter, log *zap.Logger) *Center {
	if log == nil {
		log = zap.NewNop()
	}
	return &Center{desktop: desktop, alert: alert, log: log}
}

// RequestPermission asks the desktop channel once and caches the answer.
func (c *Center) RequestPermission(ctx context.Context) Permission {
	if c.asked {
		return c.perm
	}
	c.asked = true
	if c.desktop == nil {
		c.perm = Denied
	} else {
		c.perm = c.desktop.RequestPermission(ctx)
	}
	c.log.Debug("notify: permission", zap.Stringer("permission", c.perm))
	return c.perm
}

// Permission returns the cached permission, Unknown before the first request.
func (c *Center) Permission() Permission {
	return c.perm
}

// Notify raises the alert and, when granted, sends a desktop notification.
func (c *Center) Notify(ctx context.Context, n Notification) error {
	if c.alert != nil {
		c.alert.Alert(n)
	}
	return c.Send(ctx, n)
}

// Send only sends the desktop notification; it is a no-op unless permission
// was granted.
func (c *Center) Send(ctx context.Context, n Notification) error {
	if c.perm != Granted || c.desktop == nil {
		return nil
	}
	if err := c.desktop.Send(ctx, n); err != nil {
		c.log.Debug("notify: desktop send failed", zap.Error(err))
		return fmt.Errorf("notify: %w", err)
	}
	return nil
}

// Exec sends notifications through notify-send on Linux and osascript on
// macOS.
type Exec struct {
	GOOS     string
	LookPath func(file string) (string, error)
	Run      func(ctx context.Context, name string, args ...string) error
}

// NewExec returns an Exec for the running platform.
func NewExec() *Exec {
	return &Exec{
		GOOS:     runtime.GOOS,
		LookPath: exec.LookPath,
		Run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

func (e *Exec) command(n Notification) (string, []string, bool) {
	switch e.GOOS {
	case "linux", "freebsd", "openbsd":
		return "notify-send", []string{n.Title, n.Body}, true
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", n.Body, n.Title)
		return "osascript", []string{"-e", script}, true
	default:
		return "", nil, false
	}
}

// RequestPermission grants when the platform notifier binary is installed.
func (e *Exec) RequestPermission(_ context.Context) Permission {
	name, _, ok := e.command(Notification{})
	if !ok {
		return Unsupported
	}
	if _, err := e.LookPath(name); err != nil {
		return Unsupported
	}
	return Granted
}

func (e *Exec) Send(ctx context.Context, n Notification) error {
	name, args, ok := e.command(n)
	if !ok {
		return ErrUnsupported
	}
	if _, err := e.LookPath(name); err != nil {
		return ErrUnsupported
	}
	return e.Run(ctx, name, args...)
}
