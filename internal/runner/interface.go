package runner

import (
	"context"

	"scriptripper/internal/profile"
)

// AnalysisResult is the outcome of one executed task: the verbatim model
// reply on success, or the failure reason.
type AnalysisResult struct {
	Task   string
	Output string
	Err    error
}

// Succeeded reports whether the task produced a usable reply.
func (r AnalysisResult) Succeeded() bool { return r.Err == nil }

// Observer receives progress notifications around each task invocation.
// This is a side channel; it never affects the run's results.
type Observer interface {
	TaskStarted(ctx context.Context, task string, index, total int)
	TaskFinished(ctx context.Context, task string, index, total int, err error)
}

// Runner executes the selected tasks for one transcript, sequentially and
// in the order given. A single task's failure does not abort the run.
// Cancellation is cooperative: the runner stops between tasks when the
// context is done and returns the partial result sequence.
type Runner interface {
	Run(ctx context.Context, transcriptText string, selected []profile.TaskDefinition) []AnalysisResult
}
