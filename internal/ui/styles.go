package ui

import "github.com/charmbracelet/lipgloss"

var (
	eyeDim    = lipgloss.Color("#5a0000")
	eyeMid    = lipgloss.Color("#a30000")
	eyeBright = lipgloss.Color("#ff2020")
	eyeCore   = lipgloss.Color("#ffffc8")
	ringGray  = lipgloss.Color("#969696")

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Bold(true).
			Align(lipgloss.Center)

	transcriptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff00")).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#646464")).
			Padding(0, 1)

	confirmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff00")).
			Bold(true)

	cancelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff0000")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffc107"))
)
