package study

import (
	"testing"

	"github.com/akrishn/studyhub/internal/content"
)

func twoTopicFixture() []content.Session {
	return []content.Session{
		{
			ID:    "core",
			Title: "Core",
			Topics: []content.Topic{
				{ID: "a", Title: "A", Difficulty: content.DifficultyEasy},
				{ID: "b", Title: "B", Difficulty: content.DifficultyHard},
			},
		},
		{ID: "empty", Title: "Empty", Topics: nil},
	}
}

func TestNewTracker_SelectsFirstSessionAndTopic(t *testing.T) {
	tr := NewTracker(twoTopicFixture())

	if s := tr.CurrentSession(); s == nil || s.ID != "core" {
		t.Fatalf("CurrentSession = %v, want core", s)
	}
	if topic := tr.CurrentTopic(); topic == nil || topic.ID != "a" {
		t.Fatalf("CurrentTopic = %v, want a", topic)
	}
}

func TestSelectSession_UnknownTitleFallsBackToFirst(t *testing.T) {
	tr := NewTracker(twoTopicFixture())
	tr.SelectSession("Empty")

	tr.SelectSession("does not exist")

	if s := tr.CurrentSession(); s.Title != "Core" {
		t.Errorf("fallback session = %q, want Core", s.Title)
	}
}

func TestSelectTopic_UnknownTitleFallsBackToFirst(t *testing.T) {
	tr := NewTracker(twoTopicFixture())
	tr.SelectTopic("B")
	if tr.CurrentTopic().ID != "b" {
		t.Fatal("setup: expected topic b selected")
	}

	tr.SelectTopic("nope")

	if topic := tr.CurrentTopic(); topic.ID != "a" {
		t.Errorf("fallback topic = %q, want a", topic.ID)
	}
}

func TestCurrentTopic_NilForEmptySession(t *testing.T) {
	tr := NewTracker(twoTopicFixture())
	tr.SelectSession("Empty")

	if topic := tr.CurrentTopic(); topic != nil {
		t.Errorf("CurrentTopic = %v, want nil for empty session", topic)
	}
}

func TestSetComplete_Idempotent(t *testing.T) {
	tr := NewTracker(twoTopicFixture())

	tr.SetComplete("a", true)
	tr.SetComplete("a", true)

	if !tr.IsComplete("core", "a") {
		t.Error("topic a should be complete")
	}
	if got := tr.CompletedCount("core"); got != 1 {
		t.Errorf("CompletedCount = %d, want 1", got)
	}
}

func TestSetComplete_UnknownTopicIgnored(t *testing.T) {
	tr := NewTracker(twoTopicFixture())

	tr.SetComplete("ghost", true)

	if got := tr.CompletedCount("core"); got != 0 {
		t.Errorf("CompletedCount = %d, want 0", got)
	}
	if tr.IsComplete("core", "ghost") {
		t.Error("ghost topic must not appear in the completion map")
	}
}

func TestProgress_EndToEnd(t *testing.T) {
	tr := NewTracker(twoTopicFixture())

	if p := tr.Progress("core"); p != 0 {
		t.Errorf("initial progress = %f, want 0", p)
	}

	tr.SelectTopic("B")
	tr.SetComplete("b", true)
	if p := tr.Progress("core"); p != 0.5 {
		t.Errorf("progress after b = %f, want 0.5", p)
	}

	tr.SetComplete("a", true)
	if p := tr.Progress("core"); p != 1.0 {
		t.Errorf("progress after a = %f, want 1.0", p)
	}
}

func TestProgress_ZeroTopics(t *testing.T) {
	tr := NewTracker(twoTopicFixture())

	if p := tr.Progress("empty"); p != 0 {
		t.Errorf("empty session progress = %f, want 0", p)
	}
}

func TestToggleComplete(t *testing.T) {
	tr := NewTracker(twoTopicFixture())

	tr.ToggleComplete("a")
	if !tr.IsComplete("core", "a") {
		t.Error("toggle should mark a complete")
	}

	tr.ToggleComplete("a")
	if tr.IsComplete("core", "a") {
		t.Error("second toggle should mark a incomplete")
	}
}

func TestCompletionSurvivesSessionSwitch(t *testing.T) {
	tr := NewTracker(twoTopicFixture())
	tr.SetComplete("a", true)

	tr.SelectSession("Empty")
	tr.SelectSession("Core")

	if !tr.IsComplete("core", "a") {
		t.Error("completion flag lost across session switch")
	}
}
