package session

import "errors"

var (
	// ErrEmptyQuestions means a session was started with no questions.
	ErrEmptyQuestions = errors.New("question list is empty")

	// ErrInvalidTransition means Submit or Advance was called out of turn:
	// submitting twice for one question, advancing before answering, or
	// addressing a session that was never started.
	ErrInvalidTransition = errors.New("invalid session transition")

	// ErrSessionComplete means the session already ran out of questions.
	ErrSessionComplete = errors.New("session is complete")
)
