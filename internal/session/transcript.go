package session

// Entry is one utterance captured while a question was active.
type Entry struct {
	Text          string `json:"text"`
	QuestionIndex int    `json:"question_index"`
	// Offset is the session second at which the utterance was captured
	Offset int `json:"offset"`
}

// Transcript accumulates the entries for a single question.
type Transcript struct {
	entries  []Entry
	question int
}

// NewTranscript returns an empty transcript for the given question.
func NewTranscript(question int) *Transcript {
	return &Transcript{
		question: question,
	}
}

// Question returns the index of the question the transcript belongs to.
func (t *Transcript) Question() int {
	return t.question
}

// Append adds an entry to the log. Entries that belong to another question are
// dropped.
func (t *Transcript) Append(e Entry) bool {
	if e.QuestionIndex != t.question {
		return false
	}

	t.entries = append(t.entries, e)

	return true
}

// Len returns the number of entries in the log.
func (t *Transcript) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the log.
func (t *Transcript) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)

	return out
}

// Reset clears the log, switches it to another question and returns the
// entries that were removed.
func (t *Transcript) Reset(question int) []Entry {
	drained := t.entries

	t.entries = nil
	t.question = question

	return drained
}
