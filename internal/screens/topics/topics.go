package topics

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akrishn/studyhub/internal/coach"
	"github.com/akrishn/studyhub/internal/content"
	"github.com/akrishn/studyhub/internal/router"
	"github.com/akrishn/studyhub/internal/screen"
	"github.com/akrishn/studyhub/internal/screens/reader"
	"github.com/akrishn/studyhub/internal/study"
	"github.com/akrishn/studyhub/internal/ui/components"
	"github.com/akrishn/studyhub/internal/ui/layout"
	"github.com/akrishn/studyhub/internal/ui/theme"
)

// TopicsScreen lists the topics of the selected session. Topics can be
// filtered by title or tag, toggled complete, or opened for reading.
type TopicsScreen struct {
	tracker *study.Tracker
	coach   *coach.Service
	filter  components.FilterInput
	cursor  int
}

var _ screen.Screen = (*TopicsScreen)(nil)
var _ screen.KeyHintProvider = (*TopicsScreen)(nil)
var _ screen.InputCapturer = (*TopicsScreen)(nil)

// New creates a TopicsScreen for the tracker's current session.
func New(tracker *study.Tracker, coachSvc *coach.Service) *TopicsScreen {
	s := &TopicsScreen{
		tracker: tracker,
		coach:   coachSvc,
		filter:  components.NewFilterInput("title or tag"),
	}
	s.cursor = tracker.CurrentTopicIndex()
	return s
}

func (s *TopicsScreen) Init() tea.Cmd {
	return nil
}

func (s *TopicsScreen) Title() string {
	if sess := s.tracker.CurrentSession(); sess != nil {
		return sess.Title
	}
	return "Topics"
}

func (s *TopicsScreen) KeyHints() []layout.KeyHint {
	if s.filter.Active() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Read"},
		{Key: "Space", Description: "Toggle done"},
		{Key: "/", Description: "Filter"},
		{Key: "Esc", Description: "Back"},
	}
}

// CapturingInput reports whether the filter input owns keystrokes.
func (s *TopicsScreen) CapturingInput() bool {
	return s.filter.Active()
}

// visible returns the indices of topics matching the filter, in order.
func (s *TopicsScreen) visible() []int {
	sess := s.tracker.CurrentSession()
	if sess == nil {
		return nil
	}
	query := strings.ToLower(strings.TrimSpace(s.filter.Value()))
	indices := make([]int, 0, len(sess.Topics))
	for i, topic := range sess.Topics {
		if query == "" || topicMatches(topic, query) {
			indices = append(indices, i)
		}
	}
	return indices
}

func topicMatches(topic content.Topic, query string) bool {
	if strings.Contains(strings.ToLower(topic.Title), query) {
		return true
	}
	for _, tag := range topic.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func (s *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.filter.Active() {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "enter":
				s.filter.Deactivate()
				s.cursor = 0
				return s, nil
			case "esc":
				s.filter.Clear()
				s.cursor = 0
				return s, nil
			}
		}
		var cmd tea.Cmd
		s.filter, cmd = s.filter.Update(msg)
		if s.cursor >= len(s.visible()) {
			s.cursor = 0
		}
		return s, cmd
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	visible := s.visible()

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "/":
		return s, s.filter.Activate()
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(visible)-1 {
			s.cursor++
		}
	case " ", "space":
		if s.cursor < len(visible) {
			if topic := s.topicAt(visible[s.cursor]); topic != nil {
				s.tracker.ToggleComplete(topic.ID)
			}
		}
	case "enter":
		if s.cursor < len(visible) {
			idx := visible[s.cursor]
			s.tracker.SelectTopicIndex(idx)
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: reader.New(s.tracker, s.coach)}
			}
		}
	}

	return s, nil
}

func (s *TopicsScreen) topicAt(idx int) *content.Topic {
	sess := s.tracker.CurrentSession()
	if sess == nil || idx < 0 || idx >= len(sess.Topics) {
		return nil
	}
	return &sess.Topics[idx]
}

func (s *TopicsScreen) View(width, height int) string {
	sess := s.tracker.CurrentSession()
	if sess == nil {
		return theme.Hint.Render("\n  No session selected.")
	}
	if len(sess.Topics) == 0 {
		return theme.Hint.Render("\n  This session has no topics yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	if filterLine := s.filter.View(); filterLine != "" {
		b.WriteString("  " + filterLine + "\n\n")
	}

	visible := s.visible()
	if len(visible) == 0 {
		b.WriteString(theme.Hint.Render("  No topics match the filter."))
		b.WriteString("\n")
	}

	for pos, idx := range visible {
		topic := sess.Topics[idx]

		check := "[ ]"
		checkStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if s.tracker.IsComplete(sess.ID, topic.ID) {
			check = "[✓]"
			checkStyle = theme.Completed
		}

		prefix := "   "
		titleStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if pos == s.cursor {
			prefix = " ▸ "
			titleStyle = theme.Selected
		}

		line := prefix + checkStyle.Render(check) + " " +
			titleStyle.Render(topic.Title) + "  " +
			components.DifficultyBadge(topic.Difficulty)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	bar := components.NewProgressBar("",
		s.tracker.CompletedCount(sess.ID), len(sess.Topics), min(width-8, 60))
	b.WriteString("  " + bar.View())
	b.WriteString("\n")

	return b.String()
}
