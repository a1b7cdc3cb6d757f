package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#FF6B9D")
	Secondary  = lipgloss.Color("#C792EA")
	Success    = lipgloss.Color("#C3E88D")
	Error      = lipgloss.Color("#F07178")
	Muted      = lipgloss.Color("#546E7A")
	Foreground = lipgloss.Color("#EEFFFF")

	// Border styles
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

// Base styles
var (
	// Title style for headings
	TitleStyle = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		MarginBottom(1)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	// Normal text
	TextStyle = lipgloss.NewStyle().
		Foreground(Foreground)

	// Muted/dimmed text
	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	// Selected item
	SelectedStyle = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		BorderStyle(RoundedBorder).
		BorderForeground(Primary).
		Padding(0, 1)

	// Card style
	CardStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(Secondary).
		Padding(1, 2).
		MarginBottom(1)

	// Active/focused card
	ActiveCardStyle = lipgloss.NewStyle().
		Border(ThickBorder).
		BorderForeground(Primary).
		Padding(1, 2).
		MarginBottom(1)

	StatusCompleted = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	StatusError = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	// Help text
	HelpStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true).
		MarginTop(1)
)
