package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/rehearse/internal/config"
	"github.com/ayoisaiah/rehearse/internal/testutil"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Interview: config.InterviewConfig{
			Template:   "frontend",
			Role:       "Frontend Developer",
			Company:    "General",
			Type:       "technical",
			Difficulty: config.DifficultyMedium,
			Duration:   45 * time.Minute,
		},
		Media: config.MediaConfig{
			Mode:         "video-audio",
			Resolution:   "720p",
			AudioQuality: "standard",
		},
		Transcript: config.TranscriptConfig{
			Simulate: true,
			Interval: 8,
		},
		Sound: config.SoundConfig{
			Cues: true,
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
			Accent:    "#7C3AED",
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)

	b, err := os.ReadFile(configPath)
	require.NoError(t, err, "default config was not written")

	assert.Contains(t, string(b), "template: frontend")
	assert.Contains(t, string(b), "24hr_clock: false")

	again, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := testutil.CopyFile("testdata/modified_config.yml", configPath)
	require.NoError(t, err)

	want := &config.Config{
		Interview: config.InterviewConfig{
			Template:   "google-swe",
			Title:      "Mock onsite",
			Role:       "Senior Software Engineer",
			Company:    "Google",
			Type:       "technical",
			Difficulty: config.DifficultyHard,
			Duration:   time.Hour,
		},
		Media: config.MediaConfig{
			Mode:         "audio-only",
			AutoGrant:    true,
			Resolution:   "1080p",
			AudioQuality: "high",
		},
		Transcript: config.TranscriptConfig{
			Interval: 12,
		},
		Settings: config.SettingsConfig{
			Cmd:            "notify-send done",
			Debug:          true,
			TwentyFourHour: true,
		},
		Display: config.DisplayConfig{
			Accent: "#12EAEA",
		},
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, want, cfg)
	assert.Equal(t, "15:04:05", cfg.TimeFormat())
	assert.Equal(t, 12*time.Second, cfg.TranscriptInterval())
}

func TestViperRejectsInvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte("interview:\n  duration: 2m\n"), 0o600)
	require.NoError(t, err)

	_, err = config.New(config.WithViperConfig(configPath))
	assert.ErrorContains(t, err, "interview duration must be between")
}

func TestPromptSkippedWhenConfigExists(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	require.NoError(t, os.WriteFile(configPath, nil, 0o600))

	cfg, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*config.Config) {},
		},
		{
			name:    "unknown template",
			mutate:  func(c *config.Config) { c.Interview.Template = "nope" },
			wantErr: "unknown interview template: nope",
		},
		{
			name:    "blank role",
			mutate:  func(c *config.Config) { c.Interview.Role = "  " },
			wantErr: "target role cannot be empty",
		},
		{
			name:    "unknown type",
			mutate:  func(c *config.Config) { c.Interview.Type = "trivia" },
			wantErr: "unknown interview type: trivia",
		},
		{
			name:    "unknown difficulty",
			mutate:  func(c *config.Config) { c.Interview.Difficulty = "extreme" },
			wantErr: "unknown difficulty: extreme",
		},
		{
			name:    "duration too short",
			mutate:  func(c *config.Config) { c.Interview.Duration = 4 * time.Minute },
			wantErr: "interview duration must be between 5m0s and 3h0m0s, got 4m0s",
		},
		{
			name:    "duration too long",
			mutate:  func(c *config.Config) { c.Interview.Duration = 4 * time.Hour },
			wantErr: "interview duration must be between",
		},
		{
			name:    "unknown mode",
			mutate:  func(c *config.Config) { c.Media.Mode = "hologram" },
			wantErr: "unknown recording mode: hologram",
		},
		{
			name:    "interval out of range",
			mutate:  func(c *config.Config) { c.Transcript.Interval = 0 },
			wantErr: "transcript interval must be between 1 and 60 seconds, got 0",
		},
		{
			name:    "bad accent",
			mutate:  func(c *config.Config) { c.Display.Accent = "purple" },
			wantErr: "accent color must be a valid hex color code",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
