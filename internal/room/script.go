package room

// script feeds scripted answers into the live transcript in place of speech
// recognition.
type script struct {
	lines []string
	next  int
}

func newScript(lines []string) *script {
	return &script{lines: lines}
}

// Next returns the following line, starting over after the last one.
func (s *script) Next() string {
	if len(s.lines) == 0 {
		return ""
	}

	line := s.lines[s.next%len(s.lines)]
	s.next++

	return line
}

// due reports whether an utterance is expected after elapsed seconds of
// recording.
func due(elapsed, interval int) bool {
	return interval > 0 && elapsed > 0 && elapsed%interval == 0
}
