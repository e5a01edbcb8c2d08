package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akrishn/studyhub/internal/ui/theme"
)

// Tabs is a horizontal tab strip. Left/right (or h/l) move between tabs.
type Tabs struct {
	Labels []string
	Active int
}

// NewTabs creates a tab strip with the first tab active.
func NewTabs(labels ...string) Tabs {
	return Tabs{Labels: labels}
}

// Update handles keyboard navigation.
func (t Tabs) Update(msg tea.Msg) (Tabs, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if t.Active > 0 {
			t.Active--
		}
	case "right", "l":
		if t.Active < len(t.Labels)-1 {
			t.Active++
		}
	case "tab":
		if len(t.Labels) > 0 {
			t.Active = (t.Active + 1) % len(t.Labels)
		}
	}

	return t, nil
}

// View renders the tab strip with a rule underneath.
func (t Tabs) View(width int) string {
	parts := make([]string, 0, len(t.Labels))
	for i, label := range t.Labels {
		if i == t.Active {
			parts = append(parts, theme.TabActive.Render(label))
		} else {
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}

	strip := strings.Join(parts, " ")

	ruleWidth := width
	if ruleWidth < 0 {
		ruleWidth = 0
	}
	rule := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", ruleWidth))

	return strip + "\n" + rule
}
