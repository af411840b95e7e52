package quiz

import (
	"slices"

	tea "charm.land/bubbletea/v2"

	"trivium/internal/router"
	"trivium/internal/screen"
	"trivium/internal/screens/summary"
	"trivium/internal/session"
	"trivium/internal/trainer"
	"trivium/internal/ui/components"
	"trivium/internal/ui/layout"
)

// QuizScreen runs one quiz session from first question to completion.
// The trainer owns the session; the screen only renders its state and
// translates keys into submit/advance calls.
type QuizScreen struct {
	trainer     *trainer.Trainer
	kind        session.Kind
	sess        *session.Session
	mc          components.MultiChoice
	feedback    *session.Feedback
	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New starts a session of the given kind and wraps it in a screen.
// size is only used for practice sessions.
func New(tr *trainer.Trainer, kind session.Kind, size int) *QuizScreen {
	s := &QuizScreen{
		trainer: tr,
		kind:    kind,
	}

	var (
		sess *session.Session
		err  error
	)
	if kind == session.KindPractice {
		sess, err = tr.StartPractice(size)
	} else {
		sess, err = tr.StartDiagnostic()
	}
	if err != nil {
		s.errMsg = err.Error()
		return s
	}

	s.sess = sess
	s.resetChoice()
	return s
}

// resetChoice rebuilds the option selector for the current question.
func (s *QuizScreen) resetChoice() {
	q, ok := s.sess.Current()
	if !ok {
		return
	}
	s.mc = components.NewMultiChoice(q.Options, slices.Index(q.Options, q.Answer))
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return s.kind.Label()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{
			{Key: "any key", Description: "Back"},
		}
	}
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.feedback != nil {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		return s.handleKey(kmsg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state — any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	// Quit confirmation dialog.
	if s.confirmQuit {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	// Feedback overlay — esc still guards, anything else advances.
	if s.feedback != nil {
		if key == "esc" {
			s.confirmQuit = true
			return s, nil
		}
		return s.advance()
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "enter":
		return s.submit()
	}

	// Number keys submit the matching option directly.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < len(s.mc.Options) {
			s.mc.Select(idx)
			return s.submit()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	return s, cmd
}

// submit grades the highlighted option through the trainer.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	fb, err := s.trainer.SubmitAnswer(s.kind, s.mc.Choice())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.mc.Mark(s.mc.Selected)
	s.feedback = &fb
	return s, nil
}

// advance moves past the answered question, swapping in the summary
// screen when the session just finished.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	if err := s.trainer.Advance(s.kind); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.feedback = nil

	if s.sess.Complete() {
		tr, kind := s.trainer, s.kind
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(tr, kind)}
		}
	}

	s.resetChoice()
	return s, nil
}
