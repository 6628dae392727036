package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/rehearse/internal/catalog"
)

func newContext(t *testing.T, flags map[string]string) *cli.Context {
	t.Helper()

	f := flag.NewFlagSet("rehearse", flag.ContinueOnError)

	for _, name := range []string{
		"template", "role", "company", "type", "difficulty", "duration",
		"mode", "session-cmd", "search", "since",
	} {
		_ = f.String(name, "", "")
	}

	_ = f.Uint("interval", 0, "")

	for _, name := range []string{
		"grant", "no-transcript", "no-cues", "disable-notification", "debug",
	} {
		_ = f.Bool(name, false, "")
	}

	for k, v := range flags {
		require.NoError(t, f.Set(k, v))
	}

	return cli.NewContext(&cli.App{}, f, nil)
}

func baseConfig() *Config {
	return &Config{
		Interview: InterviewConfig{
			Template:   "frontend",
			Title:      "Custom title",
			Role:       "Frontend Developer",
			Type:       "technical",
			Difficulty: DifficultyMedium,
			Duration:   45 * time.Minute,
		},
		Media:         MediaConfig{Mode: "video-audio"},
		Transcript:    TranscriptConfig{Simulate: true, Interval: 8},
		Sound:         SoundConfig{Cues: true},
		Notifications: NotificationConfig{Enabled: true},
	}
}

func TestWithCLIConfig(t *testing.T) {
	testCases := []struct {
		flags map[string]string
		check func(t *testing.T, c *Config)
		name  string
		err   error
	}{
		{
			name:  "no flags leaves config untouched",
			flags: map[string]string{},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, baseConfig(), c)
			},
		},
		{
			name:  "new template clears the custom title",
			flags: map[string]string{"template": "google-swe"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "google-swe", c.Interview.Template)
				assert.Empty(t, c.Interview.Title)
			},
		},
		{
			name:  "same template keeps the title",
			flags: map[string]string{"template": "frontend"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "Custom title", c.Interview.Title)
			},
		},
		{
			name: "interview fields",
			flags: map[string]string{
				"role":       "Data Scientist",
				"company":    "Netflix",
				"type":       "mixed",
				"difficulty": "HARD",
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "Data Scientist", c.Interview.Role)
				assert.Equal(t, "Netflix", c.Interview.Company)
				assert.Equal(t, "mixed", c.Interview.Type)
				assert.Equal(t, DifficultyHard, c.Interview.Difficulty)
			},
		},
		{
			name:  "bare minutes duration",
			flags: map[string]string{"duration": "30"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 30*time.Minute, c.Interview.Duration)
			},
		},
		{
			name:  "invalid duration",
			flags: map[string]string{"duration": "soon"},
			err:   errInvalidCLIDuration,
		},
		{
			name: "switches",
			flags: map[string]string{
				"mode":                 "practice",
				"interval":             "3",
				"grant":                "true",
				"no-transcript":        "true",
				"no-cues":              "true",
				"disable-notification": "true",
				"debug":                "true",
				"session-cmd":          "echo done",
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "practice", c.Media.Mode)
				assert.Equal(t, 3, c.Transcript.Interval)
				assert.True(t, c.Media.AutoGrant)
				assert.False(t, c.Transcript.Simulate)
				assert.False(t, c.Sound.Cues)
				assert.False(t, c.Notifications.Enabled)
				assert.True(t, c.Settings.Debug)
				assert.Equal(t, "echo done", c.Settings.Cmd)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := baseConfig()

			err := WithCLIConfig(newContext(t, tc.flags))(c)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			tc.check(t, c)
		})
	}
}

func TestFilter(t *testing.T) {
	f, err := Filter(newContext(t, map[string]string{
		"search": " google ",
		"type":   "technical",
		"since":  "2024-01-10",
	}))
	require.NoError(t, err)

	assert.Equal(t, "google", f.Search)
	assert.Equal(t, "technical", f.Type)
	assert.Equal(t, 10, f.Since.Day())

	f, err = Filter(newContext(t, map[string]string{"type": catalog.TypeAll}))
	require.NoError(t, err)
	assert.True(t, f.Since.IsZero())

	_, err = Filter(newContext(t, map[string]string{"type": "trivia"}))
	assert.ErrorIs(t, err, errUnknownType)

	_, err = Filter(newContext(t, map[string]string{"since": "not a date at all"}))
	assert.ErrorIs(t, err, errInvalidSince)
}

func TestOnboardingForm(t *testing.T) {
	var opts PromptOptions

	form := onboardingForm(catalog.Default(), &opts)
	require.NotNil(t, form)

	c := baseConfig()
	applyPromptOptions(c, PromptOptions{
		Role: "UX Designer",
		Type: "behavioral",
		Mode: "audio-only",
	})

	assert.Equal(t, "UX Designer", c.Interview.Role)
	assert.Equal(t, "behavioral", c.Interview.Type)
	assert.Equal(t, "audio-only", c.Media.Mode)
}
