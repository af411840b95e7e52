package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — warm gold on charcoal, readable in dim terminals
var (
	Primary   = lipgloss.Color("#FBBF24") // Amber
	Secondary = lipgloss.Color("#38BDF8") // Sky Blue
	Accent    = lipgloss.Color("#A78BFA") // Lavender
	Success   = lipgloss.Color("#4ADE80") // Green
	Error     = lipgloss.Color("#F87171") // Soft Red
	Text      = lipgloss.Color("#F1F5F9") // Off White
	TextDim   = lipgloss.Color("#9CA3AF") // Gray
	BgDark    = lipgloss.Color("#111827") // Near Black
	BgCard    = lipgloss.Color("#1F2937") // Charcoal
	Border    = lipgloss.Color("#374151") // Gray
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	BadgeEasy = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	BadgeMedium = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	BadgeHard = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
