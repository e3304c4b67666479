package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: muted, terminal-friendly
var (
	Primary = lipgloss.Color("#7AA2F7") // Blue
	Accent  = lipgloss.Color("#E0AF68") // Amber
	Success = lipgloss.Color("#9ECE6A") // Green
	Error   = lipgloss.Color("#F7768E") // Red
	Text    = lipgloss.Color("#C0CAF5") // Light
	TextDim = lipgloss.Color("#565F89") // Dim slate
	Border  = lipgloss.Color("#3B4261") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Label = lipgloss.NewStyle().
		Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Answer = lipgloss.NewStyle().
		Bold(true).
		Foreground(Success)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Card frames one sample when rendered in the browser or preview.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(1, 2)
