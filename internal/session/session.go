// Package session composes the full text payload sent to the model for one
// analysis task.
package session

import (
	"strings"

	"scriptripper/internal/profile"
)

const (
	transcriptOpen  = "--- BEGIN TRANSCRIPT ---"
	transcriptClose = "--- END TRANSCRIPT ---"
	taskHeader      = "--- TASK ---"
)

// Build concatenates the master style guide, the transcript, and the task
// prompt, in that fixed order. The transcript is included verbatim and in
// full; delimiters let the model tell instruction from data.
func Build(masterGuide, transcriptText string, task profile.TaskDefinition) string {
	var b strings.Builder
	b.Grow(len(masterGuide) + len(transcriptText) + len(task.Prompt) + 128)

	b.WriteString(strings.TrimRight(masterGuide, "\n"))
	b.WriteString("\n\n")
	b.WriteString(transcriptOpen)
	b.WriteString("\n")
	b.WriteString(transcriptText)
	b.WriteString("\n")
	b.WriteString(transcriptClose)
	b.WriteString("\n\n")
	b.WriteString(taskHeader)
	b.WriteString("\n")
	b.WriteString(task.Prompt)

	return b.String()
}
