package setup

import (
	"fmt"
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"trivium/internal/quizbank"
	"trivium/internal/router"
	"trivium/internal/screen"
	"trivium/internal/session"
	"trivium/internal/trainer"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testTrainer() *trainer.Trainer {
	var qs []quizbank.Question
	for _, topic := range []string{"Art", "History"} {
		for _, d := range quizbank.Difficulties() {
			qs = append(qs, quizbank.Question{
				ID:          fmt.Sprintf("%s-%s", topic, d),
				Topic:       topic,
				Difficulty:  d,
				Text:        fmt.Sprintf("%s %s?", topic, d),
				Options:     []string{"right", "wrong"},
				Answer:      "right",
				Explanation: "Explained.",
			})
		}
	}
	return trainer.New(quizbank.New(qs), trainer.Options{Source: rand.New(rand.NewPCG(17, 19))})
}

func TestSetupScreen_EnterUsesDefault(t *testing.T) {
	tr := testTrainer()
	s := New(tr, 5)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Daily Practice" {
		t.Errorf("replacement screen title = %q, want %q", msg.Screen.Title(), "Daily Practice")
	}
	if sess := tr.Session(session.KindPractice); sess == nil || sess.Len() != 5 {
		t.Error("expected a practice session of the default size")
	}
}

func TestSetupScreen_TypedSize(t *testing.T) {
	tr := testTrainer()
	s := New(tr, 5)
	s.input.Model.SetValue("3")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	cmd()

	if sess := tr.Session(session.KindPractice); sess == nil || sess.Len() != 3 {
		t.Error("expected a practice session of the typed size")
	}
}

func TestSetupScreen_RejectsZero(t *testing.T) {
	tr := testTrainer()
	s := New(tr, 5)
	s.input.Model.SetValue("0")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command for a zero size")
	}
	if tr.Session(session.KindPractice) != nil {
		t.Error("expected no session to start")
	}
}

func TestSetupScreen_FiltersNonDigits(t *testing.T) {
	s := New(testTrainer(), 5)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('a'))
	ss := scr.(*SetupScreen)

	if got := ss.input.Value(); got != "" {
		t.Errorf("input value = %q, want empty after a filtered key", got)
	}
}

func TestSetupScreen_EscPops(t *testing.T) {
	s := New(testTrainer(), 5)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
