// Package theme holds the shared color palette and text styles.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, clinical, readable on dark terminals
var (
	Primary = lipgloss.Color("#14B8A6") // Teal
	Accent  = lipgloss.Color("#8B5CF6") // Purple
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Dark Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim)

	Warn = lipgloss.NewStyle().
		Bold(true).
		Foreground(Error)
)
