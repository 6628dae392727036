package session

// Question is a single interview prompt.
type Question struct {
	Prompt string `json:"prompt"`
	// Focus is the phrase within Prompt that the room highlights
	Focus string `json:"focus,omitempty"`
	Index int    `json:"index"`
}

// Sequencer walks an immutable, ordered list of questions.
type Sequencer struct {
	questions []Question
	index     int
}

// NewSequencer creates a sequencer positioned at the first question. The
// questions are copied and re-indexed by position.
func NewSequencer(questions []Question) (*Sequencer, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	qs := make([]Question, len(questions))

	for i, q := range questions {
		q.Index = i
		qs[i] = q
	}

	return &Sequencer{
		questions: qs,
	}, nil
}

// Index returns the position of the current question.
func (s *Sequencer) Index() int {
	return s.index
}

// Current returns the current question.
func (s *Sequencer) Current() Question {
	return s.questions[s.index]
}

// Len returns the number of questions.
func (s *Sequencer) Len() int {
	return len(s.questions)
}

// HasNext reports whether there is a question after the current one.
func (s *Sequencer) HasNext() bool {
	return s.index < len(s.questions)-1
}

// Advance moves to the next question. It does nothing on the last question
// and reports whether the position changed.
func (s *Sequencer) Advance() bool {
	if !s.HasNext() {
		return false
	}

	s.index++

	return true
}

// Rewind moves to the previous question. It does nothing on the first
// question and reports whether the position changed.
func (s *Sequencer) Rewind() bool {
	if s.index == 0 {
		return false
	}

	s.index--

	return true
}

// Questions returns a copy of all the questions.
func (s *Sequencer) Questions() []Question {
	qs := make([]Question, len(s.questions))
	copy(qs, s.questions)

	return qs
}
