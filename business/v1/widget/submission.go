package widget

import "github.com/ribgsilva/note-widget/business/v1/note"

// Submission is a Form backed by plain values, used by every transport
type Submission struct {
	Input   note.Values
	Message string
	Cleared bool
}

func NewSubmission(v note.Values) *Submission {
	return &Submission{Input: v}
}

func (s *Submission) Values() note.Values {
	return s.Input
}

func (s *Submission) Alert(message string) {
	s.Message = message
}

func (s *Submission) Reset() {
	s.Input = note.Values{}
	s.Cleared = true
}
