package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akrishn/studyhub/internal/coach"
	"github.com/akrishn/studyhub/internal/router"
	"github.com/akrishn/studyhub/internal/screen"
	"github.com/akrishn/studyhub/internal/screens/topics"
	"github.com/akrishn/studyhub/internal/study"
	"github.com/akrishn/studyhub/internal/ui/components"
	"github.com/akrishn/studyhub/internal/ui/layout"
	"github.com/akrishn/studyhub/internal/ui/theme"
)

// HomeScreen shows the session picker and overall progress.
type HomeScreen struct {
	tracker *study.Tracker
	coach   *coach.Service
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. The coach service may be nil when no
// LLM provider is configured.
func New(tracker *study.Tracker, coachSvc *coach.Service) *HomeScreen {
	items := make([]components.MenuItem, 0, len(tracker.Sessions())+1)
	for _, sess := range tracker.Sessions() {
		sess := sess
		completed := tracker.CompletedCount(sess.ID)
		items = append(items, components.MenuItem{
			Label:  sess.Title,
			Detail: fmt.Sprintf("%d/%d done", completed, len(sess.Topics)),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					tracker.SelectSession(sess.Title)
					return router.PushScreenMsg{Screen: topics.New(tracker, coachSvc)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &HomeScreen{
		tracker: tracker,
		coach:   coachSvc,
		menu:    components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("StudyHub"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Pick a session to study"))
	b.WriteString("\n\n")

	// Completion can change while a topics screen is on top of this one.
	for i, sess := range h.tracker.Sessions() {
		if i >= len(h.menu.Items) {
			break
		}
		h.menu.Items[i].Detail = fmt.Sprintf("%d/%d done",
			h.tracker.CompletedCount(sess.ID), len(sess.Topics))
	}

	menu := h.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))
	b.WriteString("\n")

	total, done := h.totals()
	if total > 0 {
		bar := components.NewProgressBar("Overall", done, total, min(width-8, 60))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Sessions"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "q", Description: "Quit"},
	}
}

func (h *HomeScreen) totals() (total, done int) {
	for _, sess := range h.tracker.Sessions() {
		total += len(sess.Topics)
		done += h.tracker.CompletedCount(sess.ID)
	}
	return total, done
}
