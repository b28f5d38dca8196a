package tui

import "github.com/charmbracelet/lipgloss"

// Layout constants.
const (
	defaultWidth  = 100
	defaultHeight = 24
	borderPadding = 4
	minHeight     = 3

	// chromeHeight is the number of lines used by the header, footer, status
	// bar and search input around the table.
	chromeHeight = 6
)

// Colors.
var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#9F87FF"}
	colorSubtle  = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	colorError   = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF6B6B"}
	colorValue   = lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#EDEDED"}
)

// Styles shared by every view.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorValue)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	// DisabledStyle renders pagination controls that cannot be used.
	DisabledStyle = lipgloss.NewStyle().
			Foreground(colorSubtle).
			Faint(true)

	ActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2) //nolint:mnd // Box padding.

	ErrorBoxStyle = BoxStyle.
			BorderForeground(colorError)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				Padding(0, 1)

	TableSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
)
