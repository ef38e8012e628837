package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"golang.org/x/term"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/config"
	"tableflip.dev/daybook/pkg/notify"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/voice"
)

// pinEnv supplies the PIN for non-interactive use of a locked daybook.
const pinEnv = "DAYBOOK_PIN"

var errLocked = errors.New("daybook is locked; set " + pinEnv + " or run from a terminal")

// session is one command's view of the daybook: storage, controller and the
// printer the controller renders through.
type session struct {
	Storage    store.Storage
	Controller *app.Controller
	Printer    *printers.PrettyPrint
	Center     *notify.Center
}

type sessionOptions struct {
	ShowID bool
	Yes    bool
	// Quiet keeps the controller from rendering after each commit.
	Quiet bool
	// KeepLocked skips the PIN prompt; the caller shows its own.
	KeepLocked bool
}

func openSession(ctx context.Context, so sessionOptions) (*session, error) {
	if cfg == nil {
		var err error
		if cfg, err = config.Load(); err != nil {
			return nil, err
		}
	}
	kv, err := store.Open(cfg.StoreOptions())
	if err != nil {
		return nil, err
	}

	pp := printers.New(so.ShowID)
	center := notify.NewCenter(desktop(), pp, logger)
	center.RequestPermission(ctx)

	c := app.New(kv, app.Options{
		Confirmer: confirmer(so.Yes),
		Notifier:  center,
		Log:       logger,
	})
	if err := c.Load(); err != nil {
		_ = kv.Close()
		return nil, err
	}
	if !so.KeepLocked {
		if err := unlock(c); err != nil {
			_ = kv.Close()
			return nil, err
		}
	}
	if !so.Quiet {
		c.SetRenderer(pp)
	}
	logger.Debug("session open", zap.String("backend", string(cfg.Backend)), zap.String("path", cfg.Path))
	return &session{Storage: kv, Controller: c, Printer: pp, Center: center}, nil
}

func (s *session) Close() {
	if err := s.Storage.Close(); err != nil {
		logger.Warn("closing storage", zap.Error(err))
	}
}

func desktop() notify.Desktop {
	if cfg == nil || !cfg.DesktopNotify {
		return nil
	}
	return notify.NewExec()
}

func recognizer(dictate bool) voice.Recognizer {
	if !dictate {
		return nil
	}
	var args []string
	if cfg != nil {
		args = cfg.VoiceCommand
	}
	return voice.NewCommand(args)
}

func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// confirmer asks on the terminal, or declines when there is none.
func confirmer(yes bool) app.Confirmer {
	if yes {
		return app.Always
	}
	return app.ConfirmFunc(func(prompt string) bool {
		if !interactive() {
			return false
		}
		_, _ = color.New(color.Bold).Fprintf(color.Output, "%s [y/N] ", prompt)
		answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true
		}
		return false
	})
}

func readSecret(prompt string) (string, error) {
	if !interactive() {
		return "", errLocked
	}
	_, _ = fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	_, _ = fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func unlock(c *app.Controller) error {
	if !c.Locked() {
		return nil
	}
	if pin, ok := os.LookupEnv(pinEnv); ok {
		return c.Unlock(pin)
	}
	pin, err := readSecret("PIN: ")
	if err != nil {
		return err
	}
	return c.Unlock(pin)
}
