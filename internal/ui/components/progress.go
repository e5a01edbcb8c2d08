package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/akrishn/studyhub/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar with an optional
// "completed/total" count annotation.
type ProgressBar struct {
	Label     string
	Percent   float64
	Completed int
	Total     int
	ShowCount bool
	Width     int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, completed, total, width int) ProgressBar {
	var percent float64
	if total > 0 {
		percent = float64(completed) / float64(total)
	}
	return ProgressBar{
		Label:     label,
		Percent:   percent,
		Completed: completed,
		Total:     total,
		ShowCount: true,
		Width:     width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	count := ""
	if p.ShowCount {
		count = fmt.Sprintf("  %d/%d Topics Completed", p.Completed, p.Total)
	}

	labelWidth := lipgloss.Width(result)
	barWidth := p.Width - labelWidth - lipgloss.Width(count)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if p.ShowCount {
		result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
	}

	return result
}
