package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/akrishn/studyhub/internal/content"
	"github.com/akrishn/studyhub/internal/ui/theme"
)

// DifficultyBadge renders a colored difficulty marker, e.g. "● Medium".
func DifficultyBadge(d content.Difficulty) string {
	label := string(d)
	if label == "" {
		label = "unknown"
	}
	return lipgloss.NewStyle().
		Foreground(theme.DifficultyColor(d)).
		Bold(true).
		Render("● " + capitalize(label))
}

// Pills renders a row of dimmed bracketed labels for tags and
// related concepts.
func Pills(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	parts := make([]string, 0, len(labels))
	style := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Background(theme.BgCard).
		Padding(0, 1)
	for _, l := range labels {
		parts = append(parts, style.Render(l))
	}
	return strings.Join(parts, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
