package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akrishn/studyhub/internal/ui/theme"
)

// FilterInput wraps bubbles/textinput for incremental list filtering.
type FilterInput struct {
	Model  textinput.Model
	active bool
}

// NewFilterInput creates a filter input with the given placeholder.
func NewFilterInput(placeholder string) FilterInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	return FilterInput{Model: ti}
}

// Activate focuses the input so keystrokes edit the filter.
func (f *FilterInput) Activate() tea.Cmd {
	f.active = true
	return f.Model.Focus()
}

// Deactivate blurs the input, keeping its current value.
func (f *FilterInput) Deactivate() {
	f.active = false
	f.Model.Blur()
}

// Clear deactivates the input and resets its value.
func (f *FilterInput) Clear() {
	f.Deactivate()
	f.Model.SetValue("")
}

// Active reports whether keystrokes currently edit the filter.
func (f FilterInput) Active() bool {
	return f.active
}

// Update handles messages while the filter is active.
func (f FilterInput) Update(msg tea.Msg) (FilterInput, tea.Cmd) {
	if !f.active {
		return f, nil
	}
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the filter line. Inactive with no value renders nothing.
func (f FilterInput) View() string {
	if !f.active && f.Model.Value() == "" {
		return ""
	}
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Filter: ")
	if f.active {
		return label + f.Model.View()
	}
	return label + lipgloss.NewStyle().Foreground(theme.Text).Render(f.Model.Value())
}

// Value returns the current filter text.
func (f FilterInput) Value() string {
	return f.Model.Value()
}
