package hub

import (
	"fmt"
	"math/rand/v2"
	"strings"
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

func testTrainer(topics ...string) *trainer.Trainer {
	var qs []quizbank.Question
	for _, topic := range topics {
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
	return trainer.New(quizbank.New(qs), trainer.Options{Source: rand.New(rand.NewPCG(11, 13))})
}

// answerOne records a single correct answer so the tracker has history.
func answerOne(t *testing.T, tr *trainer.Trainer) {
	t.Helper()
	if _, err := tr.StartDiagnostic(); err != nil {
		t.Fatalf("StartDiagnostic() error: %v", err)
	}
	if _, err := tr.SubmitAnswer(session.KindDiagnostic, "right"); err != nil {
		t.Fatalf("SubmitAnswer() error: %v", err)
	}
}

func TestHubScreen_Title(t *testing.T) {
	h := New(testTrainer("Art"))
	if h.Title() != "Learning Hub" {
		t.Errorf("Title = %q, want %q", h.Title(), "Learning Hub")
	}
}

func TestHubScreen_NoHistoryView(t *testing.T) {
	h := New(testTrainer("Art", "History"))

	view := h.View(80, 24)
	if !strings.Contains(view, "no attempts yet") {
		t.Error("expected per-topic rows to show 'no attempts yet'")
	}
	if !strings.Contains(view, "Take the Initial Quiz") {
		t.Error("expected the no-data hint")
	}
}

func TestHubScreen_AccuracyRow(t *testing.T) {
	tr := testTrainer("Art")
	answerOne(t, tr)

	view := New(tr).View(80, 24)
	if !strings.Contains(view, "1/1 (100%)") {
		t.Errorf("expected a 1/1 (100%%) row, view:\n%s", view)
	}
}

func TestHubScreen_EmptyBank(t *testing.T) {
	h := New(trainer.New(quizbank.New(nil), trainer.Options{}))

	if view := h.View(80, 24); !strings.Contains(view, "empty") {
		t.Error("expected an empty-bank notice")
	}
}

func TestHubScreen_ResetConfirmCancel(t *testing.T) {
	tr := testTrainer("Art")
	answerOne(t, tr)
	h := New(tr)

	var scr screen.Screen = h
	scr, _ = scr.Update(keyPress('r'))
	hs := scr.(*HubScreen)
	if !hs.confirmReset {
		t.Fatal("expected reset confirmation dialog")
	}

	scr, _ = hs.Update(keyPress('n'))
	hs = scr.(*HubScreen)
	if hs.confirmReset {
		t.Error("expected reset confirmation to be dismissed")
	}
	if !tr.HasHistory() {
		t.Error("expected stats to survive a cancelled reset")
	}
}

func TestHubScreen_ResetConfirmYes(t *testing.T) {
	tr := testTrainer("Art")
	answerOne(t, tr)
	h := New(tr)

	var scr screen.Screen = h
	scr, _ = scr.Update(keyPress('r'))
	scr, _ = scr.Update(keyPress('y'))
	hs := scr.(*HubScreen)

	if hs.confirmReset {
		t.Error("expected the dialog to close after confirming")
	}
	if tr.HasHistory() {
		t.Error("expected stats to be cleared")
	}
	if tr.Session(session.KindDiagnostic) != nil {
		t.Error("expected the open session to be discarded")
	}
}

func TestHubScreen_EscPops(t *testing.T) {
	h := New(testTrainer("Art"))

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestHubScreen_KeyHints(t *testing.T) {
	h := New(testTrainer("Art"))

	if hints := h.KeyHints(); len(hints) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(hints))
	}

	var scr screen.Screen = h
	scr, _ = scr.Update(keyPress('r'))
	hs := scr.(*HubScreen)
	if hints := hs.KeyHints(); len(hints) != 2 {
		t.Errorf("confirm KeyHints length = %d, want 2", len(hints))
	}
}
