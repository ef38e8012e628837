// Package config loads daybook settings from .daybook.yaml and DAYBOOK_* env.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/timeutil"
)

const (
	defaultPath             = "~/.daybook.db"
	defaultReminderInterval = "1m"
	defaultFocusDuration    = "25m"
)

// Config carries the resolved settings.
type Config struct {
	Path             string
	Backend          store.Backend
	ReminderInterval time.Duration
	FocusDuration    time.Duration
	DesktopNotify    bool
	VoiceCommand     []string
	LogLevel         string
	LogFile          string

	// File is the config file that was read, empty when defaults and env
	// were enough.
	File string
}

// StoreOptions converts the config into store options.
func (c *Config) StoreOptions() store.Options {
	return store.Options{Backend: c.Backend, Path: c.Path}
}

// Load reads configuration. DAYBOOK_CONFIG_PATH adds a directory to search
// ahead of the working directory and $HOME.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetDefault("backend", string(store.BackendDiskv))
	v.SetDefault("reminder.interval", defaultReminderInterval)
	v.SetDefault("focus.duration", defaultFocusDuration)
	v.SetDefault("notify.desktop", true)
	v.SetDefault("voice.command", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetConfigName(".daybook") // .yaml is implicit
	v.SetEnvPrefix("DAYBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("DAYBOOK_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}
	reminder, _, err := timeutil.ParseDuration(v.GetString("reminder.interval"), defaultReminderInterval)
	if err != nil {
		return nil, err
	}
	focus, _, err := timeutil.ParseDuration(v.GetString("focus.duration"), defaultFocusDuration)
	if err != nil {
		return nil, err
	}
	logFile := v.GetString("log.file")
	if logFile != "" {
		if logFile, err = homedir.Expand(logFile); err != nil {
			return nil, err
		}
	}
	return &Config{
		Path:             path,
		Backend:          store.Backend(v.GetString("backend")),
		ReminderInterval: reminder,
		FocusDuration:    focus,
		DesktopNotify:    v.GetBool("notify.desktop"),
		VoiceCommand:     strings.Fields(v.GetString("voice.command")),
		LogLevel:         v.GetString("log.level"),
		LogFile:          logFile,
		File:             v.ConfigFileUsed(),
	}, nil
}
