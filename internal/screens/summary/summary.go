package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"trivium/internal/progress"
	"trivium/internal/router"
	"trivium/internal/screen"
	"trivium/internal/session"
	"trivium/internal/trainer"
	"trivium/internal/ui/layout"
	"trivium/internal/ui/theme"
)

// SummaryScreen displays the result of a finished quiz session.
type SummaryScreen struct {
	trainer *trainer.Trainer
	kind    session.Kind
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen for the session in the given slot.
func New(tr *trainer.Trainer, kind session.Kind) *SummaryScreen {
	return &SummaryScreen{trainer: tr, kind: kind}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sess := s.trainer.Session(s.kind)
	if sess == nil {
		return ""
	}

	var b strings.Builder

	// Title.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(s.kind.Label()))
	b.WriteString("\n\n")

	// Stats line.
	accuracy := fmt.Sprintf("%.0f%%", float64(sess.Score())/float64(sess.Len())*100)
	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %s",
		sess.Len(), sess.Score(), accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Weak topics section.
	weak := s.trainer.WeakTopics()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Weak topics")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	if len(weak) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Render("No weak topics right now — nice work!"))
		b.WriteString("\n")
	} else {
		stats := accuracyByTopic(s.trainer.Accuracies())
		for _, topic := range weak {
			line := fmt.Sprintf("  %s    %.0f%%", topic, stats[topic]*100)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Error).Render(line)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render(s.tip()))

	return b.String()
}

// tip suggests the natural next step for the finished session kind.
func (s *SummaryScreen) tip() string {
	if s.kind == session.KindDiagnostic {
		return "Daily Practice will now focus on your weak topics."
	}
	return "Check the Learning Hub to watch your topics improve."
}

func accuracyByTopic(rows []progress.TopicStats) map[string]float64 {
	byTopic := make(map[string]float64, len(rows))
	for _, row := range rows {
		byTopic[row.Topic] = row.Accuracy()
	}
	return byTopic
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
