package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"trivium/internal/config"
	"trivium/internal/router"
	"trivium/internal/screen"
	"trivium/internal/screens/home"
	"trivium/internal/trainer"
	"trivium/internal/ui/layout"
)

// AppModel is the root Bubble Tea model. It owns the screen stack and
// the shared trainer, and composes the header/footer frame around the
// active screen.
type AppModel struct {
	trainer *trainer.Trainer
	router  *router.Router
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(tr *trainer.Trainer, cfg config.Config) AppModel {
	homeScreen := home.New(tr, cfg)
	return AppModel{
		trainer: tr,
		router:  router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Only ctrl+c is global. Everything else, esc included, goes to
		// the active screen so it can guard an in-flight quiz.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	accuracy, _ := m.trainer.OverallAccuracy()
	header := layout.RenderHeader(title, m.trainer.Answered(), accuracy, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for its key hints and falls back
// to stack-position defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		return provider.KeyHints()
	}

	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(tr *trainer.Trainer, cfg config.Config) error {
	p := tea.NewProgram(newAppModel(tr, cfg))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
