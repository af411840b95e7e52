package session

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"trivium/internal/quizbank"
)

// Kind says what a session is for. The trainer keeps one live session per
// kind.
type Kind string

const (
	KindDiagnostic Kind = "diagnostic"
	KindPractice   Kind = "practice"
)

// Label returns a human-readable name for a session kind.
func (k Kind) Label() string {
	switch k {
	case KindDiagnostic:
		return "Initial Quiz"
	case KindPractice:
		return "Daily Practice"
	default:
		return string(k)
	}
}

// Recorder receives one call per submitted answer.
// *progress.Tracker satisfies it.
type Recorder interface {
	Record(topic string, correct bool) error
}

// Feedback is what the player sees after submitting an answer.
type Feedback struct {
	Correct bool

	// Message always carries the explanation; the incorrect variant also
	// names the right answer.
	Message string
}

// Session walks a fixed question list in two steps per question: Submit
// locks in an answer and produces feedback, Advance moves on. Sessions are
// driven from a single goroutine; mutations are all-or-nothing, so a
// failed call leaves the state exactly as it was.
type Session struct {
	id        string
	kind      Kind
	questions []quizbank.Question
	recorder  Recorder

	pos      int
	score    int
	answered bool
	feedback *Feedback
}

// New starts a session over the given questions. The recorder must be
// non-nil; it is called once per submitted answer.
func New(kind Kind, questions []quizbank.Question, rec Recorder) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyQuestions
	}
	return &Session{
		id:        uuid.New().String(),
		kind:      kind,
		questions: slices.Clone(questions),
		recorder:  rec,
	}, nil
}

// Submit locks in the player's answer for the current question.
// It errors without side effects when the session is complete, when the
// current question was already answered, or when recording fails.
func (s *Session) Submit(selected string) (Feedback, error) {
	if s.Complete() {
		return Feedback{}, ErrSessionComplete
	}
	if s.answered {
		return Feedback{}, ErrInvalidTransition
	}

	q := s.questions[s.pos]
	correct := selected == q.Answer

	if err := s.recorder.Record(q.Topic, correct); err != nil {
		return Feedback{}, err
	}

	if correct {
		s.score++
	}
	s.answered = true
	fb := Feedback{Correct: correct, Message: feedbackMessage(q, correct)}
	s.feedback = &fb
	return fb, nil
}

// Advance moves past an answered question. Advancing past the last
// question completes the session; after that every mutating call fails
// with ErrSessionComplete.
func (s *Session) Advance() error {
	if s.Complete() {
		return ErrSessionComplete
	}
	if !s.answered {
		return ErrInvalidTransition
	}

	s.pos++
	s.answered = false
	s.feedback = nil
	return nil
}

// Current returns the question awaiting an answer or feedback
// acknowledgement. ok is false once the session is complete.
func (s *Session) Current() (quizbank.Question, bool) {
	if s.Complete() {
		return quizbank.Question{}, false
	}
	return s.questions[s.pos], true
}

// ID returns the session's UUID.
func (s *Session) ID() string { return s.id }

// Kind returns what the session is for.
func (s *Session) Kind() Kind { return s.kind }

// Index returns the zero-based position of the current question.
// Equal to Len once the session is complete.
func (s *Session) Index() int { return s.pos }

// Len returns the number of questions in the session.
func (s *Session) Len() int { return len(s.questions) }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Answered reports whether the current question has a locked-in answer.
func (s *Session) Answered() bool { return s.answered }

// Complete reports whether the session has walked past its last question.
func (s *Session) Complete() bool { return s.pos == len(s.questions) }

// Progress returns the fraction of questions advanced past, in [0, 1].
func (s *Session) Progress() float64 {
	return float64(s.pos) / float64(max(1, len(s.questions)))
}

// PendingFeedback returns the feedback for the answered-but-not-advanced
// question, or nil outside that window.
func (s *Session) PendingFeedback() *Feedback {
	if s.feedback == nil {
		return nil
	}
	fb := *s.feedback
	return &fb
}

// feedbackMessage builds the player-facing result line for a question.
// Both variants carry the explanation.
func feedbackMessage(q quizbank.Question, correct bool) string {
	if correct {
		return strings.TrimSpace(fmt.Sprintf("Correct! %s", q.Explanation))
	}
	return strings.TrimSpace(fmt.Sprintf("Incorrect. The correct answer is %s. %s", q.Answer, q.Explanation))
}
