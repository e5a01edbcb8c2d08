package content

// Difficulty is the topic difficulty rating.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Known reports whether d is one of the recognized difficulty values.
// Unknown values are kept as-is and rendered without a colored badge.
func (d Difficulty) Known() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Session is a named group of topics forming one learning unit.
type Session struct {
	ID     string  `json:"session_id"`
	Title  string  `json:"session_title"`
	Topics []Topic `json:"topics"`
}

// Topic is one learnable unit with content, guidance, and an example.
type Topic struct {
	ID              string     `json:"topic_id"`
	Title           string     `json:"topic_title"`
	Difficulty      Difficulty `json:"difficulty"`
	Tags            []string   `json:"tags"`
	RelatedConcepts []string   `json:"related_concepts"`
	ContentMarkdown string     `json:"content_markdown"`
	InterviewNotes  string     `json:"interview_guidance"`
	ExampleUsage    string     `json:"example_usage"`
}
