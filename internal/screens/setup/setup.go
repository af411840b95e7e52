package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"trivium/internal/router"
	"trivium/internal/screen"
	"trivium/internal/screens/quiz"
	"trivium/internal/session"
	"trivium/internal/trainer"
	"trivium/internal/ui/components"
	"trivium/internal/ui/layout"
	"trivium/internal/ui/theme"
)

// SetupScreen asks how many questions the practice round should have
// before handing off to the quiz screen.
type SetupScreen struct {
	trainer     *trainer.Trainer
	defaultSize int
	input       components.TextInput
}

var _ screen.Screen = (*SetupScreen)(nil)

// New creates a new SetupScreen with the configured default size.
func New(tr *trainer.Trainer, defaultSize int) *SetupScreen {
	input := components.NewTextInput(fmt.Sprintf("%d", defaultSize), true, 3)
	return &SetupScreen{
		trainer:     tr,
		defaultSize: defaultSize,
		input:       input,
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			n := s.defaultSize
			if s.input.Value() != "" {
				parsed, err := s.input.NumericValue()
				if err != nil || parsed < 1 {
					s.input.Submit(false)
					return s, nil
				}
				n = parsed
			}
			tr := s.trainer
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: quiz.New(tr, session.KindPractice, n)}
			}
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SetupScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("How many questions?")

	hint := theme.Hint.Render(fmt.Sprintf(
		"Enter for %d · bank holds %d", s.defaultSize, s.trainer.Bank().Len()))

	box := components.Card(strings.Join([]string{
		prompt,
		"",
		s.input.View(),
		"",
		hint,
	}, "\n"), cw)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}

func (s *SetupScreen) Title() string {
	return "Daily Practice"
}

// KeyHints provides the footer hints for this screen.
func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
