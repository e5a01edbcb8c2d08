package drill

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akrishn/studyhub/internal/coach"
	"github.com/akrishn/studyhub/internal/router"
	"github.com/akrishn/studyhub/internal/screen"
	"github.com/akrishn/studyhub/internal/ui/components"
	"github.com/akrishn/studyhub/internal/ui/layout"
	"github.com/akrishn/studyhub/internal/ui/theme"
)

// pollTickMsg drives polling of the coach service while a drill is
// being generated.
type pollTickMsg time.Time

const pollInterval = 200 * time.Millisecond

// DrillScreen shows a generated interview question for one topic.
// The drill request is started by the caller before this screen is
// pushed; the screen polls until the result is ready.
type DrillScreen struct {
	coach      *coach.Service
	topicTitle string
	choice     components.MultiChoice
	loaded     bool
	failed     bool
	waitedFor  time.Duration
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a DrillScreen polling the given coach service.
func New(coachSvc *coach.Service, topicTitle string) *DrillScreen {
	return &DrillScreen{
		coach:      coachSvc,
		topicTitle: topicTitle,
	}
}

func (s *DrillScreen) Init() tea.Cmd {
	return pollCmd()
}

func (s *DrillScreen) Title() string {
	return "Interview Drill"
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	if !s.loaded {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if s.choice.Submitted {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pollTickMsg:
		if s.loaded || s.failed {
			return s, nil
		}
		if drill, ok := s.coach.ConsumeDrill(); ok {
			s.choice = components.NewMultiChoice(
				drill.Question, drill.Options, drill.CorrectIndex, drill.Explanation)
			s.loaded = true
			return s, nil
		}
		s.waitedFor += pollInterval
		if s.waitedFor > 30*time.Second {
			s.failed = true
			return s, nil
		}
		return s, pollCmd()

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		if s.loaded {
			var cmd tea.Cmd
			s.choice, cmd = s.choice.Update(msg)
			return s, cmd
		}
	}

	return s, nil
}

func (s *DrillScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	switch {
	case s.failed:
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\nCould not generate a drill. Press Esc to go back."))

	case !s.loaded:
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\nPreparing an interview question on " + s.topicTitle + "..."))

	default:
		inner := lipgloss.NewStyle().Width(min(width-8, 76)).Render(s.choice.View())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, inner))
		if s.choice.Submitted {
			verdict := theme.Incorrect.Render("Not quite.")
			if s.choice.IsCorrect() {
				verdict = theme.Correct.Render("Correct!")
			}
			b.WriteString("\n")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict))
		}
	}

	b.WriteString("\n")
	return b.String()
}

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}
