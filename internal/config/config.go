package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Playback struct {
		Iterations int  // Full passes over the recorded points
		IntervalMs int  // Busy-wait after every click
		PauseMs    int  // Busy-wait after every pass
		Profile    bool // Log interval statistics once playback ends
	}
	Hotkeys struct {
		Record string
		Start  string
	}
	Logging struct {
		Level  string
		Format string // console or json
		Debug  bool   // Development settings: caller, stack traces on warn
	}
}

func NewConfig() *Config {
	cfg := &Config{}
	cfg.Playback.Iterations = 10
	cfg.Playback.IntervalMs = 0
	cfg.Playback.PauseMs = 0
	cfg.Playback.Profile = false
	cfg.Hotkeys.Record = "ctrl+a"
	cfg.Hotkeys.Start = "ctrl+s"
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "console"
	return cfg
}

// BindFlags registers the command line flags, using the current values as defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&c.Playback.Profile, "profile", "p", c.Playback.Profile, "print the profile information")
	fs.IntVarP(&c.Playback.IntervalMs, "interval", "i", c.Playback.IntervalMs, "loop interval in milliseconds")
	fs.IntVarP(&c.Playback.Iterations, "num", "n", c.Playback.Iterations, "number of iterations")
	fs.IntVar(&c.Playback.PauseMs, "pause", c.Playback.PauseMs, "pause between passes in milliseconds")
	fs.StringVar(&c.Hotkeys.Record, "record-key", c.Hotkeys.Record, "hotkey that records the cursor position")
	fs.StringVar(&c.Hotkeys.Start, "start-key", c.Hotkeys.Start, "hotkey that freezes the points and starts clicking")
	fs.StringVar(&c.Logging.Level, "log-level", c.Logging.Level, "log level (debug, info, warn, error)")
	fs.StringVar(&c.Logging.Format, "log-format", c.Logging.Format, "log output format (console, json)")
	fs.BoolVar(&c.Logging.Debug, "debug", c.Logging.Debug, "development logging with caller and stack traces")
}

// Validate rejects values the clicker cannot run with.
func (c *Config) Validate() error {
	if c.Playback.Iterations < 0 {
		return fmt.Errorf("%w: num must not be negative, got %d", ErrInvalid, c.Playback.Iterations)
	}
	if c.Playback.IntervalMs < 0 {
		return fmt.Errorf("%w: interval must not be negative, got %d", ErrInvalid, c.Playback.IntervalMs)
	}
	if c.Playback.PauseMs < 0 {
		return fmt.Errorf("%w: pause must not be negative, got %d", ErrInvalid, c.Playback.PauseMs)
	}
	if c.Hotkeys.Record == "" || c.Hotkeys.Start == "" {
		return fmt.Errorf("%w: hotkeys must not be empty", ErrInvalid)
	}
	if c.Hotkeys.Record == c.Hotkeys.Start {
		return fmt.Errorf("%w: record and start hotkeys must differ, both are %q", ErrInvalid, c.Hotkeys.Record)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: unsupported log format %q", ErrInvalid, c.Logging.Format)
	}
	if _, err := zap.ParseAtomicLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Parse builds a Config from the command line arguments, without the program name.
func Parse(name string, args []string) (*Config, *pflag.FlagSet, error) {
	cfg := NewConfig()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	cfg.BindFlags(fs)

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fs, err
	}
	return cfg, fs, nil
}
