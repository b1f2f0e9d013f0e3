package cmd

import (
	"charm.land/lipgloss/v2"

	"github.com/kurera-app/kurera/internal/ui/theme"
)

// Shared output styles for non-interactive command output.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary)

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Success)

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error)

	dimStyle = lipgloss.NewStyle().
			Foreground(theme.TextDim)

	labelStyle = lipgloss.NewStyle().
			Foreground(theme.Accent)
)
