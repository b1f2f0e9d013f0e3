package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kurera-app/kurera/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar with a trailing percent.
type ProgressBar struct {
	Percent int // 0..100
	Width   int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(percent, width int) ProgressBar {
	return ProgressBar{Percent: percent, Width: width}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	barWidth := p.Width - 6 // " 100%"
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * p.Percent / 100
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.Primary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	percentStr := theme.Hint.Render(fmt.Sprintf("  %d%%", p.Percent))

	return filledStr + emptyStr + percentStr
}
