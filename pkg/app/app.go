// Package app owns daybook state and applies every mutation through a single
// read-modify-write-render cycle, so UIs and CLIs share the same logic.
package app

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/daybook/pkg/notify"
	"tableflip.dev/daybook/pkg/state"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/viewmodel"
)

var (
	ErrNotFound      = errors.New("app: entity not found")
	ErrNoPersistence = errors.New("app: no persistence configured")
)

// Renderer commits a view to the display.
type Renderer interface {
	Render(v viewmodel.View)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(v viewmodel.View)

func (f RenderFunc) Render(v viewmodel.View) { f(v) }

// Confirmer guards destructive actions.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Always confirms every prompt; used by --yes and the UI after its own modal.
var Always = ConfirmFunc(func(string) bool { return true })

// Options configures a Controller. Nil fields get no-op defaults, except
// Confirmer which defaults to declining.
type Options struct {
	Renderer  Renderer
	Confirmer Confirmer
	Notifier  notify.Notifier
	Now       func() time.Time
	Log       *zap.Logger
}

// Controller is the single owner of a state.Store. It is driven from one
// goroutine and is not safe for concurrent use.
type Controller struct {
	State   *state.Store
	Storage store.Storage

	renderer  Renderer
	confirmer Confirmer
	notifier  notify.Notifier
	now       func() time.Time
	log       *zap.Logger
}

// New builds a controller over kv with empty state. Call Load to hydrate it.
func New(kv store.Storage, o Options) *Controller {
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Renderer == nil {
		o.Renderer = RenderFunc(func(viewmodel.View) {})
	}
	if o.Confirmer == nil {
		o.Confirmer = ConfirmFunc(func(string) bool { return false })
	}
	return &Controller{
		State:     state.New(o.Log),
		Storage:   kv,
		renderer:  o.Renderer,
		confirmer: o.Confirmer,
		notifier:  o.Notifier,
		now:       o.Now,
		log:       o.Log,
	}
}

// SetRenderer swaps the display; the UI installs itself after construction.
func (c *Controller) SetRenderer(r Renderer) {
	if r == nil {
		r = RenderFunc(func(viewmodel.View) {})
	}
	c.renderer = r
}

// SetConfirmer swaps the delete guard.
func (c *Controller) SetConfirmer(cf Confirmer) {
	if cf == nil {
		cf = ConfirmFunc(func(string) bool { return false })
	}
	c.confirmer = cf
}

// SetNotifier swaps the notification channel.
func (c *Controller) SetNotifier(n notify.Notifier) {
	c.notifier = n
}

// Now returns the controller clock.
func (c *Controller) Now() time.Time {
	return c.now()
}

// Load hydrates state from storage and renders.
func (c *Controller) Load() error {
	if c.Storage == nil {
		return ErrNoPersistence
	}
	c.State.Load(c.Storage, c.now())
	c.Render()
	return nil
}

// View computes the current view.
func (c *Controller) View() viewmodel.View {
	return viewmodel.Build(c.State, c.now())
}

// Render recomputes and commits the current view.
func (c *Controller) Render() {
	c.renderer.Render(c.View())
}

// Stats returns the derived counters.
func (c *Controller) Stats() state.Stats {
	return c.State.Stats()
}

// commit saves all collections then renders. The render happens even when
// the save fails so the display matches memory.
func (c *Controller) commit(op string) error {
	if c.Storage == nil {
		return ErrNoPersistence
	}
	err := c.State.Save(c.Storage, c.now())
	c.Render()
	if err != nil {
		c.log.Warn("app: save failed", zap.String("op", op), zap.Error(err))
		return fmt.Errorf("app: save: %w", err)
	}
	c.log.Debug("app: saved", zap.String("op", op))
	return nil
}

func (c *Controller) confirm(format string, args ...any) bool {
	return c.confirmer.Confirm(fmt.Sprintf(format, args...))
}
