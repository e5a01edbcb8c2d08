package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akrishn/studyhub/internal/breaks"
	"github.com/akrishn/studyhub/internal/coach"
	"github.com/akrishn/studyhub/internal/router"
	"github.com/akrishn/studyhub/internal/screen"
	"github.com/akrishn/studyhub/internal/screens/home"
	"github.com/akrishn/studyhub/internal/study"
	"github.com/akrishn/studyhub/internal/ui/layout"
)

// clockTickMsg drives the break countdown once per second.
type clockTickMsg time.Time

// Options carries the wired services into the root model. Coach may be
// nil when no LLM provider is configured.
type Options struct {
	Tracker *study.Tracker
	Timer   *breaks.Timer
	Coach   *coach.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	tracker *study.Tracker
	timer   *breaks.Timer
	toast   string
	width   int
	height  int
	now     time.Time
}

// newAppModel creates a new AppModel with the session picker on top.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Tracker, opts.Coach)
	return AppModel{
		router:  router.New(homeScreen),
		tracker: opts.Tracker,
		timer:   opts.Timer,
		now:     time.Now(),
	}
}

func (m AppModel) Init() tea.Cmd {
	return clockCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clockTickMsg:
		m.now = time.Time(msg)
		if reminder, fired := m.timer.Check(m.now); fired {
			m.toast = reminder.Message
		}
		return m, clockCmd()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		capturing := false
		if c, ok := m.router.Active().(screen.InputCapturer); ok {
			capturing = c.CapturingInput()
		}

		if !capturing && msg.String() == "r" {
			// Restart the break countdown from any screen.
			m.timer.Reset(time.Now())
			m.toast = ""
			return m, nil
		}

		// Any keystroke dismisses the break toast and starts the next
		// countdown episode.
		if m.toast != "" {
			m.toast = ""
			m.timer.Acknowledge(time.Now())
			return m, nil
		}

		if !capturing && msg.String() == "q" && m.router.Depth() == 1 {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	countdown := m.timer.FormatRemaining(m.now)
	header := layout.RenderHeader(title, countdown, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)

	if m.toast != "" {
		toast := layout.RenderToast(m.toast+"  (any key to dismiss, r to restart)", m.width)
		contentLines := contentHeight - lipgloss.Height(toast)
		if contentLines < 0 {
			contentLines = 0
		}
		content = lipgloss.NewStyle().
			Width(m.width).
			Height(contentLines).
			Render(content) + "\n" + toast
	}

	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		hints := provider.KeyHints()
		return append(hints, layout.KeyHint{Key: "r", Description: "Reset break"})
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "r", Description: "Reset break"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

func clockCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}
