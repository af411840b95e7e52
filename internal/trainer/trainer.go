package trainer

import (
	"trivium/internal/progress"
	"trivium/internal/quizbank"
	"trivium/internal/quizgen"
	"trivium/internal/session"
)

// Trainer owns the engine state for one player: the question bank, the
// per-topic tracker, the set builders, and at most one live session per
// kind. Everything lives in memory and dies with the process.
//
// The trainer does no locking: a single goroutine (the UI loop) drives it,
// and all operations are synchronous and in-memory.
type Trainer struct {
	bank     *quizbank.Bank
	tracker  *progress.Tracker
	exam     *quizgen.ExamBuilder
	practice *quizgen.PracticeBuilder
	sessions map[session.Kind]*session.Session
}

// Options tune a trainer away from its defaults. The zero value is ready
// to use.
type Options struct {
	// Source overrides the random source; tests inject a seeded one.
	Source quizgen.Source

	// WeakThreshold and WeakLimit override the weak-topic tuning when
	// positive.
	WeakThreshold float64
	WeakLimit     int
}

// New creates a trainer over a loaded bank with zeroed progress.
func New(bank *quizbank.Bank, opts Options) *Trainer {
	src := opts.Source
	if src == nil {
		src = quizgen.NewSource()
	}

	tracker := progress.NewTracker(bank.Topics())
	practice := quizgen.NewPracticeBuilder(bank, tracker, src)
	if opts.WeakThreshold > 0 {
		practice.Threshold = opts.WeakThreshold
	}
	if opts.WeakLimit > 0 {
		practice.WeakLimit = opts.WeakLimit
	}

	return &Trainer{
		bank:     bank,
		tracker:  tracker,
		exam:     quizgen.NewExamBuilder(bank, src),
		practice: practice,
		sessions: make(map[session.Kind]*session.Session, 2),
	}
}

// Bank returns the loaded question bank.
func (t *Trainer) Bank() *quizbank.Bank { return t.bank }

// ResetProgress zeroes every topic counter and discards both live
// sessions, returning the trainer to its fresh-start state.
func (t *Trainer) ResetProgress() {
	t.tracker.Reset()
	t.sessions = make(map[session.Kind]*session.Session, 2)
}

// BuildDiagnosticExam assembles the stratified exam across every topic.
func (t *Trainer) BuildDiagnosticExam() []quizbank.Question {
	return t.exam.Build()
}

// BuildPracticeSet assembles n questions weighted toward weak topics.
func (t *Trainer) BuildPracticeSet(n int) []quizbank.Question {
	return t.practice.Build(n)
}

// StartSession starts a new session over questions in the slot for kind,
// discarding the slot's previous session. On error the slot is untouched.
func (t *Trainer) StartSession(kind session.Kind, questions []quizbank.Question) (*session.Session, error) {
	s, err := session.New(kind, questions, t.tracker)
	if err != nil {
		return nil, err
	}
	t.sessions[kind] = s
	return s, nil
}

// StartDiagnostic builds and starts the initial quiz.
func (t *Trainer) StartDiagnostic() (*session.Session, error) {
	return t.StartSession(session.KindDiagnostic, t.BuildDiagnosticExam())
}

// StartPractice builds and starts a practice run of n questions.
func (t *Trainer) StartPractice(n int) (*session.Session, error) {
	return t.StartSession(session.KindPractice, t.BuildPracticeSet(n))
}

// Session returns the live session for kind, or nil when none started.
func (t *Trainer) Session(kind session.Kind) *session.Session {
	return t.sessions[kind]
}

// SubmitAnswer routes an answer to the live session for kind. With no
// session in the slot it fails like any other out-of-turn submit.
func (t *Trainer) SubmitAnswer(kind session.Kind, selected string) (session.Feedback, error) {
	s := t.sessions[kind]
	if s == nil {
		return session.Feedback{}, session.ErrInvalidTransition
	}
	return s.Submit(selected)
}

// Advance moves the live session for kind past an answered question.
func (t *Trainer) Advance(kind session.Kind) error {
	s := t.sessions[kind]
	if s == nil {
		return session.ErrInvalidTransition
	}
	return s.Advance()
}

// Accuracies returns the per-topic accuracy table in topic order.
func (t *Trainer) Accuracies() []progress.TopicStats {
	return t.tracker.Stats()
}

// WeakTopics returns the weakest topics under the configured tuning.
func (t *Trainer) WeakTopics() []string {
	return t.tracker.WeakTopics(t.practice.Threshold, t.practice.WeakLimit)
}

// HasHistory reports whether any answer was recorded since the last reset.
func (t *Trainer) HasHistory() bool {
	return t.tracker.TotalAnswered() > 0
}

// Answered returns the total number of recorded answers.
func (t *Trainer) Answered() int {
	return t.tracker.TotalAnswered()
}

// OverallAccuracy returns the fraction of recorded answers that were
// correct. The second result is false until something has been recorded.
func (t *Trainer) OverallAccuracy() (float64, bool) {
	var correct, total int
	for _, row := range t.tracker.Stats() {
		correct += row.Correct
		total += row.Total
	}
	if total == 0 {
		return 0, false
	}
	return float64(correct) / float64(total), true
}
