package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"trivium/internal/config"
	"trivium/internal/router"
	"trivium/internal/screen"
	"trivium/internal/screens/hub"
	"trivium/internal/screens/quiz"
	"trivium/internal/screens/setup"
	"trivium/internal/session"
	"trivium/internal/trainer"
	"trivium/internal/ui/components"
	"trivium/internal/ui/theme"
)

// Block-letter title with a compact fallback for small terminals.
const titleArt = ` ████████╗ ██████╗  ██╗ ██╗   ██╗ ██╗ ██╗   ██╗ ███╗   ███╗
 ╚══██╔══╝ ██╔══██╗ ██║ ██║   ██║ ██║ ██║   ██║ ████╗ ████║
    ██║    ██████╔╝ ██║ ██║   ██║ ██║ ██║   ██║ ██╔████╔██║
    ██║    ██╔══██╗ ██║ ╚██╗ ██╔╝ ██║ ██║   ██║ ██║╚██╔╝██║
    ██║    ██║  ██║ ██║  ╚████╔╝  ██║ ╚██████╔╝ ██║ ╚═╝ ██║
    ╚═╝    ╚═╝  ╚═╝ ╚═╝   ╚═══╝   ╚═╝  ╚═════╝  ╚═╝     ╚═╝`

const titleCompact = "T · R · I · V · I · U · M"

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	trainer *trainer.Trainer
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. Quiz entries are disabled when the
// question bank is empty.
func New(tr *trainer.Trainer, cfg config.Config) *HomeScreen {
	empty := tr.Bank().Len() == 0

	items := []components.MenuItem{
		{Label: "INITIAL QUIZ", Disabled: empty, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(tr, session.KindDiagnostic, 0)}
			}
		}},
		{Label: "DAILY PRACTICE", Disabled: empty, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(tr, cfg.PracticeSize)}
			}
		}},
		{Label: "LEARNING HUB", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: hub.New(tr)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		trainer: tr,
		menu:    components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.trainer, cw, compact),
		h.menu.View(cw, compact),
	}

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := titleArt
	if compact || cw < 60 {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders bank size, topic count, and how many topics
// currently rank as weak.
func renderStatsBar(tr *trainer.Trainer, cw int, compact bool) string {
	bankStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	topicStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	weakStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	bank := tr.Bank()
	weak := len(tr.WeakTopics())

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			bankStyle.Render(fmt.Sprintf("★%d", bank.Len())),
			topicStyle.Render(fmt.Sprintf("◆%d", len(bank.Topics()))),
			weakText(weak, true, weakStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			bankStyle.Render(fmt.Sprintf("★ %d QUESTIONS", bank.Len())),
			topicStyle.Render(fmt.Sprintf("◆ %d TOPICS", len(bank.Topics()))),
			weakText(weak, false, weakStyle, dimStyle),
		)
	}

	return components.StatBar(stats, cw)
}

func weakText(weak int, compact bool, active, dim lipgloss.Style) string {
	if weak == 0 {
		if compact {
			return dim.Render("⚡0")
		}
		return dim.Render("⚡ NONE WEAK")
	}
	if compact {
		return active.Render(fmt.Sprintf("⚡%d", weak))
	}
	return active.Render(fmt.Sprintf("⚡ %d WEAK", weak))
}
