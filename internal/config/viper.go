package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keyInterviewTemplate   = "interview.template"
	keyInterviewTitle      = "interview.title"
	keyInterviewRole       = "interview.role"
	keyInterviewCompany    = "interview.company"
	keyInterviewType       = "interview.type"
	keyInterviewDifficulty = "interview.difficulty"
	keyInterviewDuration   = "interview.duration"
	keyMediaMode           = "media.mode"
	keyMediaAutoGrant      = "media.auto_grant"
	keyMediaResolution     = "media.resolution"
	keyMediaAudioQuality   = "media.audio_quality"
	keyTranscriptSimulate  = "transcript.simulate"
	keyTranscriptInterval  = "transcript.interval"
	keySoundCues           = "sound.cues"
	keyNotificationsEnable = "notifications.enabled"
	keySessionCmd          = "settings.cmd"
	keyDebug               = "settings.debug"
	keyTwentyFourHour      = "settings.24hr_clock"
	keyDarkTheme           = "display.dark_theme"
	keyAccent              = "display.accent"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing the defaults there first if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures defaults and carries over values answered in the
// first-run prompt so they end up in the written file.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyInterviewTemplate, "frontend")
	v.SetDefault(keyInterviewTitle, "")
	v.SetDefault(keyInterviewRole, "Frontend Developer")
	v.SetDefault(keyInterviewCompany, "General")
	v.SetDefault(keyInterviewType, "technical")
	v.SetDefault(keyInterviewDifficulty, DifficultyMedium)
	v.SetDefault(keyInterviewDuration, "45m")
	v.SetDefault(keyMediaMode, "video-audio")
	v.SetDefault(keyMediaAutoGrant, false)
	v.SetDefault(keyMediaResolution, "720p")
	v.SetDefault(keyMediaAudioQuality, "standard")
	v.SetDefault(keyTranscriptSimulate, true)
	v.SetDefault(keyTranscriptInterval, 8)
	v.SetDefault(keySoundCues, true)
	v.SetDefault(keyNotificationsEnable, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyDebug, false)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyAccent, "#7C3AED")

	if c.Interview.Role != "" {
		v.Set(keyInterviewRole, c.Interview.Role)
	}

	if c.Interview.Type != "" {
		v.Set(keyInterviewType, c.Interview.Type)
	}

	if c.Media.Mode != "" {
		v.Set(keyMediaMode, c.Media.Mode)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errDecodeConfig.Wrap(err)
	}

	return nil
}
