package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Template      string
	Role          string
	Company       string
	Type          string
	Difficulty    string
	Duration      string
	Mode          string
	SessionCmd    string
	Interval      uint
	Grant         bool
	NoTranscript  bool
	NoCues        bool
	DisableNotify bool
	Debug         bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Template:      ctx.String("template"),
			Role:          ctx.String("role"),
			Company:       ctx.String("company"),
			Type:          ctx.String("type"),
			Difficulty:    ctx.String("difficulty"),
			Duration:      ctx.String("duration"),
			Mode:          ctx.String("mode"),
			SessionCmd:    ctx.String("session-cmd"),
			Interval:      ctx.Uint("interval"),
			Grant:         ctx.Bool("grant"),
			NoTranscript:  ctx.Bool("no-transcript"),
			NoCues:        ctx.Bool("no-cues"),
			DisableNotify: ctx.Bool("disable-notification"),
			Debug:         ctx.Bool("debug"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Template != "" && opts.Template != c.Interview.Template {
		c.Interview.Template = opts.Template
		c.Interview.Title = ""
	}

	setIfNotEmpty(&c.Interview.Role, opts.Role)
	setIfNotEmpty(&c.Interview.Company, opts.Company)
	setIfNotEmpty(&c.Interview.Type, opts.Type)
	setIfNotEmpty(&c.Interview.Difficulty, strings.ToLower(opts.Difficulty))
	setIfNotEmpty(&c.Media.Mode, opts.Mode)
	setIfNotEmpty(&c.Settings.Cmd, opts.SessionCmd)

	if opts.Duration != "" {
		dur, err := parseDuration(opts.Duration)
		if err != nil {
			return errInvalidCLIDuration.Fmt(opts.Duration)
		}

		c.Interview.Duration = dur
	}

	if opts.Interval > 0 {
		c.Transcript.Interval = int(opts.Interval)
	}

	if opts.Grant {
		c.Media.AutoGrant = true
	}

	if opts.NoTranscript {
		c.Transcript.Simulate = false
	}

	if opts.NoCues {
		c.Sound.Cues = false
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.Debug {
		c.Settings.Debug = true
	}

	return nil
}

func setIfNotEmpty(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

// parseDuration accepts Go duration strings and bare minute counts.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	return time.ParseDuration(s + "m")
}
