package content

import "strings"

const diagramFence = "```mermaid"

// SplitDiagram separates the first fenced mermaid block from a markdown
// body. It returns the surrounding prose (fence removed) and the diagram
// source, or the input unchanged with an empty diagram when no complete
// marker pair exists. Only the first pair is split; later fences stay in
// the prose.
func SplitDiagram(markdown string) (prose, diagram string) {
	start := strings.Index(markdown, diagramFence)
	if start < 0 {
		return markdown, ""
	}

	bodyStart := start + len(diagramFence)
	rest := markdown[bodyStart:]
	end := strings.Index(rest, "```")
	if end < 0 {
		// Unterminated fence: treat as plain prose.
		return markdown, ""
	}

	diagram = strings.TrimSpace(rest[:end])
	prose = markdown[:start] + rest[end+3:]
	return prose, diagram
}
