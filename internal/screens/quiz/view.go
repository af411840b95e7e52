package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"trivium/internal/quizbank"
	"trivium/internal/ui/components"
	"trivium/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.sess == nil {
		return ""
	}
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	if s.feedback != nil {
		return s.renderFeedback(width)
	}
	return s.renderQuestion(width)
}

// renderQuestion renders the active question display.
func (s *QuizScreen) renderQuestion(width int) string {
	q, ok := s.sess.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	// Topic info line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Topic: %s", q.Topic)) +
		"  " + difficultyBadge(q.Difficulty)

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d",
			s.sess.Index()+1,
			s.sess.Len(),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.sess.Score(),
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n")

	bar := components.NewProgressBar("", s.sess.Progress(), false, min(width-8, 50))
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	// Question text (centered).
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))

	selectLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\nSelect (1-%d) or use arrows + Enter", len(q.Options)))
	b.WriteString(selectLine)

	return b.String()
}

// renderFeedback renders the feedback overlay.
func (s *QuizScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.feedback.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
	}

	b.WriteString("\n\n")

	// Options with the outcome colorized.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	b.WriteString("\n")

	// Full feedback text, including the explanation.
	msgStyle := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, msgStyle.Render(s.feedback.Message)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave this quiz?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers so far already count toward your stats."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, back to menu"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func difficultyBadge(d quizbank.Difficulty) string {
	switch d {
	case quizbank.DifficultyEasy:
		return theme.BadgeEasy.Render(d.Label())
	case quizbank.DifficultyMedium:
		return theme.BadgeMedium.Render(d.Label())
	default:
		return theme.BadgeHard.Render(d.Label())
	}
}
