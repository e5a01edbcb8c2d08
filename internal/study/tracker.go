// Package study holds the session-scoped selection and completion state.
// All state lives in an explicit Tracker passed to the screens; there are
// no package-level variables. Every mutation is a direct synchronous
// assignment, so reads always reflect the latest write.
package study

import "github.com/akrishn/studyhub/internal/content"

// Tracker tracks which session and topic are currently displayed and which
// topics the user has marked complete. Completion maps are created lazily
// the first time a session is visited, with every topic defaulting to
// incomplete, and their keys are exactly the session's topic IDs.
type Tracker struct {
	sessions []content.Session

	sessionIdx int
	topicIdx   int

	// completed maps session ID -> topic ID -> done.
	completed map[string]map[string]bool
}

// NewTracker creates a Tracker over the loaded sessions. The first session
// and its first topic start selected.
func NewTracker(sessions []content.Session) *Tracker {
	t := &Tracker{
		sessions:  sessions,
		completed: make(map[string]map[string]bool),
	}
	if len(sessions) > 0 {
		t.ensureCompletion(sessions[0])
	}
	return t
}

// Sessions returns the loaded session list.
func (t *Tracker) Sessions() []content.Session {
	return t.sessions
}

// CurrentSession returns the selected session, or nil when the store is empty.
func (t *Tracker) CurrentSession() *content.Session {
	if len(t.sessions) == 0 {
		return nil
	}
	return &t.sessions[t.sessionIdx]
}

// CurrentTopic returns the selected topic, or nil when the current session
// has no topics.
func (t *Tracker) CurrentTopic() *content.Topic {
	s := t.CurrentSession()
	if s == nil || len(s.Topics) == 0 {
		return nil
	}
	return &s.Topics[t.topicIdx]
}

// SelectSession selects the session with the given title. A missing title
// falls back to the first session rather than failing; selection of the
// topic resets to the session's first topic either way.
func (t *Tracker) SelectSession(title string) {
	if len(t.sessions) == 0 {
		return
	}
	t.sessionIdx = 0
	for i, s := range t.sessions {
		if s.Title == title {
			t.sessionIdx = i
			break
		}
	}
	t.topicIdx = 0
	t.ensureCompletion(t.sessions[t.sessionIdx])
}

// SelectTopic selects the topic with the given title within the current
// session, falling back to the first topic when the title is missing.
// No-op when the session has zero topics.
func (t *Tracker) SelectTopic(title string) {
	s := t.CurrentSession()
	if s == nil || len(s.Topics) == 0 {
		t.topicIdx = 0
		return
	}
	t.topicIdx = 0
	for i, topic := range s.Topics {
		if topic.Title == title {
			t.topicIdx = i
			break
		}
	}
}

// CurrentTopicIndex returns the index of the selected topic within the
// current session.
func (t *Tracker) CurrentTopicIndex() int {
	return t.topicIdx
}

// SelectTopicIndex selects the topic at index i, clamped to the session's
// topic range.
func (t *Tracker) SelectTopicIndex(i int) {
	s := t.CurrentSession()
	if s == nil || len(s.Topics) == 0 {
		t.topicIdx = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(s.Topics) {
		i = len(s.Topics) - 1
	}
	t.topicIdx = i
}

// SetComplete records the completion flag for a topic in the current
// session. Idempotent; unknown topic IDs are ignored.
func (t *Tracker) SetComplete(topicID string, done bool) {
	s := t.CurrentSession()
	if s == nil {
		return
	}
	m := t.ensureCompletion(*s)
	if _, ok := m[topicID]; !ok {
		return
	}
	m[topicID] = done
}

// ToggleComplete flips the completion flag for a topic in the current session.
func (t *Tracker) ToggleComplete(topicID string) {
	s := t.CurrentSession()
	if s == nil {
		return
	}
	m := t.ensureCompletion(*s)
	if v, ok := m[topicID]; ok {
		m[topicID] = !v
	}
}

// IsComplete reports whether the topic is marked done in the given session.
func (t *Tracker) IsComplete(sessionID, topicID string) bool {
	return t.completed[sessionID][topicID]
}

// CompletedCount returns how many topics are done in the given session.
func (t *Tracker) CompletedCount(sessionID string) int {
	n := 0
	for _, done := range t.completed[sessionID] {
		if done {
			n++
		}
	}
	return n
}

// Progress returns the completed fraction for a session, in [0,1].
// A session with zero topics reports 0.
func (t *Tracker) Progress(sessionID string) float64 {
	for _, s := range t.sessions {
		if s.ID != sessionID {
			continue
		}
		if len(s.Topics) == 0 {
			return 0
		}
		m := t.ensureCompletion(s)
		done := 0
		for _, v := range m {
			if v {
				done++
			}
		}
		return float64(done) / float64(len(s.Topics))
	}
	return 0
}

// ensureCompletion returns the session's completion map, creating it on
// first visit with an entry per topic.
func (t *Tracker) ensureCompletion(s content.Session) map[string]bool {
	if m, ok := t.completed[s.ID]; ok {
		return m
	}
	m := make(map[string]bool, len(s.Topics))
	for _, topic := range s.Topics {
		m[topic.ID] = false
	}
	t.completed[s.ID] = m
	return m
}
