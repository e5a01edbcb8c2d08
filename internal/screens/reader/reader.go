package reader

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akrishn/studyhub/internal/coach"
	"github.com/akrishn/studyhub/internal/router"
	"github.com/akrishn/studyhub/internal/screen"
	"github.com/akrishn/studyhub/internal/screens/drill"
	"github.com/akrishn/studyhub/internal/study"
	"github.com/akrishn/studyhub/internal/ui/components"
	"github.com/akrishn/studyhub/internal/ui/layout"
	"github.com/akrishn/studyhub/internal/ui/theme"

	"github.com/akrishn/studyhub/internal/content"
)

const (
	tabConcepts = iota
	tabInterview
	tabExample
)

// ReaderScreen shows one topic's study material across three tabs.
type ReaderScreen struct {
	tracker *study.Tracker
	coach   *coach.Service
	tabs    components.Tabs
	scroll  int
}

var _ screen.Screen = (*ReaderScreen)(nil)
var _ screen.KeyHintProvider = (*ReaderScreen)(nil)

// New creates a ReaderScreen for the tracker's current topic.
func New(tracker *study.Tracker, coachSvc *coach.Service) *ReaderScreen {
	return &ReaderScreen{
		tracker: tracker,
		coach:   coachSvc,
		tabs:    components.NewTabs("Core Concepts", "Interview Guidance", "Real-World Example"),
	}
}

func (s *ReaderScreen) Init() tea.Cmd {
	return nil
}

func (s *ReaderScreen) Title() string {
	if topic := s.tracker.CurrentTopic(); topic != nil {
		return topic.Title
	}
	return "Reader"
}

func (s *ReaderScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Tabs"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "c", Description: "Toggle done"},
	}
	if s.coach != nil {
		hints = append(hints, layout.KeyHint{Key: "d", Description: "Drill"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *ReaderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
		return s, nil
	case "down", "j":
		s.scroll++
		return s, nil
	case "c":
		if topic := s.tracker.CurrentTopic(); topic != nil {
			s.tracker.ToggleComplete(topic.ID)
		}
		return s, nil
	case "d":
		if s.coach == nil {
			return s, nil
		}
		sess := s.tracker.CurrentSession()
		topic := s.tracker.CurrentTopic()
		if sess == nil || topic == nil {
			return s, nil
		}
		s.coach.RequestDrill(context.Background(), coach.DrillInput{
			Topic:   *topic,
			Session: sess.Title,
		})
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: drill.New(s.coach, topic.Title)}
		}
	}

	var cmd tea.Cmd
	before := s.tabs.Active
	s.tabs, cmd = s.tabs.Update(msg)
	if s.tabs.Active != before {
		s.scroll = 0
	}
	return s, cmd
}

func (s *ReaderScreen) View(width, height int) string {
	topic := s.tracker.CurrentTopic()
	if topic == nil {
		return theme.Hint.Render("\n  Nothing to read in this session yet.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderTopicHeader(*topic))
	b.WriteString("\n")
	b.WriteString(s.tabs.View(width))
	b.WriteString("\n")

	body := s.renderTab(*topic, width)
	b.WriteString(s.clip(body, height-lipgloss.Height(b.String())))

	return b.String()
}

func (s *ReaderScreen) renderTopicHeader(topic content.Topic) string {
	var b strings.Builder

	title := theme.Title.Render(topic.Title)
	badge := components.DifficultyBadge(topic.Difficulty)

	done := ""
	if sess := s.tracker.CurrentSession(); sess != nil && s.tracker.IsComplete(sess.ID, topic.ID) {
		done = theme.Completed.Render("  ✓ done")
	}

	b.WriteString("  " + title + "  " + badge + done + "\n")

	labels := make([]string, 0, len(topic.Tags)+len(topic.RelatedConcepts))
	labels = append(labels, topic.Tags...)
	labels = append(labels, topic.RelatedConcepts...)
	if pills := components.Pills(labels); pills != "" {
		b.WriteString("  " + pills + "\n")
	}

	return b.String()
}

func (s *ReaderScreen) renderTab(topic content.Topic, width int) string {
	textWidth := width - 4
	if textWidth < 20 {
		textWidth = 20
	}
	wrap := lipgloss.NewStyle().Width(textWidth).Foreground(theme.Text).PaddingLeft(2)

	switch s.tabs.Active {
	case tabInterview:
		if topic.InterviewNotes == "" {
			return theme.Hint.Render("  No interview guidance for this topic.")
		}
		return wrap.Render(topic.InterviewNotes)

	case tabExample:
		if topic.ExampleUsage == "" {
			return theme.Hint.Render("  No real-world example for this topic.")
		}
		return wrap.Render(topic.ExampleUsage)

	default:
		prose, diagram := content.SplitDiagram(topic.ContentMarkdown)
		out := wrap.Render(prose)
		if diagram != "" {
			box := theme.DiagramBox.Width(textWidth).Render(diagram)
			out += "\n\n" + lipgloss.NewStyle().PaddingLeft(2).Render(box)
		}
		return out
	}
}

// clip applies vertical scrolling to rendered content. The scroll offset
// is clamped so the last line stays visible.
func (s *ReaderScreen) clip(body string, height int) string {
	if height < 1 {
		height = 1
	}
	lines := strings.Split(body, "\n")

	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}

	end := s.scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[s.scroll:end], "\n")
}
