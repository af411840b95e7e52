package hub

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"trivium/internal/progress"
	"trivium/internal/router"
	"trivium/internal/screen"
	"trivium/internal/trainer"
	"trivium/internal/ui/components"
	"trivium/internal/ui/layout"
	"trivium/internal/ui/theme"
)

const barWidth = 22

// HubScreen shows the per-topic accuracy table, flags weak topics, and
// hosts the progress reset flow.
type HubScreen struct {
	trainer      *trainer.Trainer
	confirmReset bool
}

var _ screen.Screen = (*HubScreen)(nil)
var _ screen.KeyHintProvider = (*HubScreen)(nil)

// New creates a new HubScreen.
func New(tr *trainer.Trainer) *HubScreen {
	return &HubScreen{trainer: tr}
}

func (h *HubScreen) Init() tea.Cmd {
	return nil
}

func (h *HubScreen) Title() string {
	return "Learning Hub"
}

func (h *HubScreen) KeyHints() []layout.KeyHint {
	if h.confirmReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset"},
			{Key: "N", Description: "Keep stats"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Reset progress"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	if h.confirmReset {
		switch kmsg.String() {
		case "y", "Y":
			h.trainer.ResetProgress()
			h.confirmReset = false
		case "n", "N", "esc":
			h.confirmReset = false
		}
		return h, nil
	}

	switch kmsg.String() {
	case "r", "R":
		h.confirmReset = true
	case "esc", "q":
		return h, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return h, nil
}

func (h *HubScreen) View(width, height int) string {
	if h.confirmReset {
		return renderResetConfirm(width)
	}

	rows := h.trainer.Accuracies()
	if len(rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  The question bank is empty.")
	}

	nameWidth := 0
	for _, row := range rows {
		if len(row.Topic) > nameWidth {
			nameWidth = len(row.Topic)
		}
	}

	weak := h.trainer.WeakTopics()
	weakSet := make(map[string]bool, len(weak))
	for _, topic := range weak {
		weakSet[topic] = true
	}

	var lines []string
	lines = append(lines,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Accuracy by topic"),
		"")
	for _, row := range rows {
		lines = append(lines, renderTopicRow(row, weakSet[row.Topic], nameWidth))
	}
	lines = append(lines, "", h.renderWeakLine(weak))

	block := strings.Join(lines, "\n")

	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// renderTopicRow renders one table row. Topics without any recorded
// answer get a plain note instead of a misleading bar.
func renderTopicRow(row progress.TopicStats, weak bool, nameWidth int) string {
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if weak {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	name := nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, row.Topic))

	if row.Total == 0 {
		note := lipgloss.NewStyle().Foreground(theme.TextDim).Render("no attempts yet")
		return fmt.Sprintf("  %s   %s", name, note)
	}

	bar := components.NewProgressBar("", row.Accuracy(), false, barWidth)
	stats := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d (%.0f%%)", row.Correct, row.Total, row.Accuracy()*100))

	return fmt.Sprintf("  %s   %s  %s", name, bar.View(), stats)
}

func (h *HubScreen) renderWeakLine(weak []string) string {
	if !h.trainer.HasHistory() {
		return theme.Hint.Render("Take the Initial Quiz to map your strengths.")
	}
	if len(weak) == 0 {
		return lipgloss.NewStyle().
			Foreground(theme.Success).
			Render("No weak topics right now — nice work!")
	}
	return lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("Focus on: " + strings.Join(weak, ", "))
}

// renderResetConfirm renders the reset confirmation dialog.
func renderResetConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Reset all progress?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Accuracy history and any unfinished quizzes will be cleared."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, start fresh"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep my stats"))

	return b.String()
}
