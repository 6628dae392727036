package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequencer(t *testing.T) {
	seq, err := NewSequencer(testQuestions(3))
	require.NoError(t, err)

	assert.Equal(t, 0, seq.Index())
	assert.Equal(t, 3, seq.Len())
	assert.True(t, seq.HasNext())
	assert.False(t, seq.Rewind())

	assert.True(t, seq.Advance())
	assert.True(t, seq.Advance())
	assert.False(t, seq.HasNext())

	assert.False(t, seq.Advance(), "advancing past the end is a no-op")
	assert.Equal(t, 2, seq.Index())
	assert.Equal(t, 2, seq.Current().Index)

	assert.True(t, seq.Rewind())
	assert.Equal(t, 1, seq.Index())
}

func TestSequencerReindexesAndCopies(t *testing.T) {
	qs := []Question{
		{Index: 7, Prompt: "a"},
		{Index: 7, Prompt: "b"},
	}

	seq, err := NewSequencer(qs)
	require.NoError(t, err)

	qs[0].Prompt = "changed"

	got := seq.Questions()
	assert.Equal(t, "a", got[0].Prompt)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, 1, got[1].Index)

	got[1].Prompt = "changed"
	assert.Equal(t, "b", seq.Questions()[1].Prompt)
}

func TestSequencerEmpty(t *testing.T) {
	_, err := NewSequencer([]Question{})
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestTranscript(t *testing.T) {
	tr := NewTranscript(0)

	assert.True(t, tr.Append(Entry{Text: "one", QuestionIndex: 0}))
	assert.False(t, tr.Append(Entry{Text: "stray", QuestionIndex: 1}))
	assert.True(t, tr.Append(Entry{Text: "two", QuestionIndex: 0}))
	assert.Equal(t, 2, tr.Len())

	drained := tr.Reset(1)

	assert.Len(t, drained, 2)
	assert.Zero(t, tr.Len())
	assert.Equal(t, 1, tr.Question())
	assert.True(t, tr.Append(Entry{Text: "three", QuestionIndex: 1}))
	assert.Equal(t, "three", tr.Entries()[0].Text)
}

func TestStatusString(t *testing.T) {
	for status, want := range map[Status]string{
		Idle:       "idle",
		Recording:  "recording",
		Paused:     "paused",
		Ended:      "ended",
		Status(42): "unknown",
	} {
		assert.Equal(t, want, status.String())
	}
}
