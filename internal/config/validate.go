package config

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/ayoisaiah/rehearse/internal/catalog"
	"github.com/ayoisaiah/rehearse/internal/media"
)

var (
	minInterviewDuration = 5 * time.Minute
	maxInterviewDuration = 3 * time.Hour

	minTranscriptInterval = 1
	maxTranscriptInterval = 60

	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateInterview(); err != nil {
		return err
	}

	if _, err := media.ParseMode(c.Media.Mode); err != nil {
		return errUnknownMode.Fmt(c.Media.Mode)
	}

	if c.Transcript.Interval < minTranscriptInterval ||
		c.Transcript.Interval > maxTranscriptInterval {
		return errInvalidInterval.Fmt(
			minTranscriptInterval,
			maxTranscriptInterval,
			c.Transcript.Interval,
		)
	}

	if !hexColorRegex.MatchString(c.Display.Accent) {
		return errInvalidColor.Fmt(c.Display.Accent)
	}

	return nil
}

func (c *Config) validateInterview() error {
	cat := catalog.Default()

	if _, err := cat.Template(c.Interview.Template); err != nil {
		return errUnknownTemplate.Fmt(c.Interview.Template)
	}

	if strings.TrimSpace(c.Interview.Role) == "" {
		return errEmptyRole
	}

	if !cat.HasType(c.Interview.Type) {
		return errUnknownType.Fmt(c.Interview.Type)
	}

	if !slices.Contains(Difficulties, c.Interview.Difficulty) {
		return errUnknownDifficulty.Fmt(c.Interview.Difficulty)
	}

	d := c.Interview.Duration
	if d < minInterviewDuration || d > maxInterviewDuration {
		return errInvalidDuration.Fmt(minInterviewDuration, maxInterviewDuration, d)
	}

	return nil
}
