package coach

import (
	"fmt"
	"strings"
)

const drillSystemPrompt = `You are a senior engineer running a mock technical interview. A candidate has just reviewed study material on a topic and wants to test their understanding with a realistic interview question.`

func buildDrillUserMessage(input DrillInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Session: %s\n", input.Session))
	b.WriteString(fmt.Sprintf("Topic: %s\n", input.Topic.Title))
	b.WriteString(fmt.Sprintf("Difficulty: %s\n", input.Topic.Difficulty))
	if len(input.Topic.Tags) > 0 {
		b.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(input.Topic.Tags, ", ")))
	}

	b.WriteString("\nStudy Material:\n")
	b.WriteString(input.Topic.ContentMarkdown)
	b.WriteString("\n")

	if input.Topic.InterviewNotes != "" {
		b.WriteString("\nInterview Guidance:\n")
		b.WriteString(input.Topic.InterviewNotes)
		b.WriteString("\n")
	}

	b.WriteString(`
Instructions:
Write one multiple-choice interview question that:
1. Tests understanding of the topic above, not recall of the exact wording.
2. Matches the stated difficulty. A hard topic gets a question with a subtle distinction between options.
3. Has exactly four options. Exactly one is correct. The wrong options must be plausible mistakes a real candidate would make.
4. Includes a brief explanation of why the correct option is correct.
Use plain text for all options. No markdown formatting inside the question or options.`)

	return b.String()
}
