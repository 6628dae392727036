// Package config assembles rehearse settings from the config file, the
// command line and the first-run prompt.
package config

import (
	"fmt"
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Interview     InterviewConfig    `mapstructure:"interview"`
		Media         MediaConfig        `mapstructure:"media"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Display       DisplayConfig      `mapstructure:"display"`
		Transcript    TranscriptConfig   `mapstructure:"transcript"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Notifications NotificationConfig `mapstructure:"notifications"`
	}

	// InterviewConfig describes the interview to run.
	InterviewConfig struct {
		Template   string        `mapstructure:"template"`
		Title      string        `mapstructure:"title"`
		Role       string        `mapstructure:"role"`
		Company    string        `mapstructure:"company"`
		Type       string        `mapstructure:"type"`
		Difficulty string        `mapstructure:"difficulty"`
		Duration   time.Duration `mapstructure:"duration"`
	}

	// MediaConfig holds the recording settings.
	MediaConfig struct {
		Mode         string `mapstructure:"mode"`
		Resolution   string `mapstructure:"resolution"`
		AudioQuality string `mapstructure:"audio_quality"`
		AutoGrant    bool   `mapstructure:"auto_grant"`
	}

	// TranscriptConfig controls the simulated live transcript.
	TranscriptConfig struct {
		Interval int  `mapstructure:"interval"`
		Simulate bool `mapstructure:"simulate"`
	}

	// SoundConfig holds sound-related settings.
	SoundConfig struct {
		Cues bool `mapstructure:"cues"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SettingsConfig holds general settings.
	SettingsConfig struct {
		Cmd            string `mapstructure:"cmd"`
		Debug          bool   `mapstructure:"debug"`
		TwentyFourHour bool   `mapstructure:"24hr_clock"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		Accent    string `mapstructure:"accent"`
		DarkTheme bool   `mapstructure:"dark_theme"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

// Difficulty levels.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

var Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// TimeFormat is the layout used to show wall clock times.
func (c *Config) TimeFormat() string {
	if c.Settings.TwentyFourHour {
		return "15:04:05"
	}

	return "03:04:05 PM"
}

// TranscriptInterval is the recorded time between simulated utterances.
func (c *Config) TranscriptInterval() time.Duration {
	return time.Duration(c.Transcript.Interval) * time.Second
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"%s (%s, %s, %s)",
		c.Interview.Template,
		c.Interview.Type,
		c.Interview.Duration,
		c.Media.Mode,
	)
}
