// Package coach generates interview drills for the current topic through
// the LLM provider abstraction. It is optional: the app runs without it
// when no provider is configured.
package coach

import "github.com/akrishn/studyhub/internal/content"

// Drill is a generated multiple-choice interview question for one topic.
type Drill struct {
	TopicID      string
	Question     string
	Options      []string
	CorrectIndex int
	Explanation  string
}

// DrillInput holds the context needed to generate a drill.
type DrillInput struct {
	Topic   content.Topic
	Session string
}
