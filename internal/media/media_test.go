package media

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/rehearse/internal/session"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		in    string
		want  Mode
		video bool
		audio bool
	}{
		{in: "video-audio", want: ModeVideoAudio, video: true, audio: true},
		{in: " Audio-Only ", want: ModeAudioOnly, audio: true},
		{in: "practice", want: ModePractice},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			m, err := ParseMode(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, m)

			video, audio := m.Devices()
			assert.Equal(t, tc.video, video)
			assert.Equal(t, tc.audio, audio)
		})
	}

	_, err := ParseMode("screen")
	assert.ErrorIs(t, err, errUnknownMode)
}

func TestStatic(t *testing.T) {
	ctx := context.Background()

	g := Grant()

	s, err := g.RequestAccess(ctx, true, false)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.True(t, g.Last.Released())
	assert.True(t, g.Last.Video)

	d := Deny()

	_, err = d.RequestAccess(ctx, true, true)
	assert.ErrorIs(t, err, session.ErrPermissionDenied)
	assert.Equal(t, 1, d.Requests)
}

func TestConsentIsSingleUse(t *testing.T) {
	ctx := context.Background()

	var c Consent

	_, err := c.RequestAccess(ctx, true, true)
	assert.ErrorIs(t, err, session.ErrPermissionDenied, "no answer yet")

	c.Answer(true)

	s, err := c.RequestAccess(ctx, true, true)
	require.NoError(t, err)
	assert.NotNil(t, s)

	_, err = c.RequestAccess(ctx, true, true)
	assert.ErrorIs(t, err, session.ErrPermissionDenied, "answer was consumed")

	c.Answer(false)

	_, err = c.RequestAccess(ctx, false, true)
	assert.ErrorIs(t, err, session.ErrPermissionDenied)
}

func TestConsentPracticeMode(t *testing.T) {
	var c Consent

	s, err := c.RequestAccess(context.Background(), false, false)
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestControllerWithConsent(t *testing.T) {
	var consent Consent

	ctrl, err := session.NewController(
		[]session.Question{{Prompt: "Why this role?"}},
		&consent,
		session.NewTicker(time.Second),
	)
	require.NoError(t, err)

	assert.ErrorIs(t, ctrl.Start(context.Background()), session.ErrPermissionDenied)
	assert.Equal(t, session.Idle, ctrl.Status())

	consent.Answer(true)

	require.NoError(t, ctrl.Start(context.Background()))
	assert.Equal(t, session.Recording, ctrl.Status())
	require.NoError(t, ctrl.Close())
}
