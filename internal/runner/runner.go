package runner

import (
	"context"
	"fmt"
	"strings"

	"scriptripper/internal/profile"
	"scriptripper/internal/session"
)

// Run executes each selected task in caller order, one outstanding model
// call at a time. Results are collected in selection order; failures are
// recorded and the run continues with the next task.
func (r *implRunner) Run(ctx context.Context, transcriptText string, selected []profile.TaskDefinition) []AnalysisResult {
	results := make([]AnalysisResult, 0, len(selected))
	total := len(selected)

	for i, task := range selected {
		// Cooperative cancellation: stop before starting the next task.
		if ctx.Err() != nil {
			r.logger.Info(ctx, "Run cancelled after %d/%d tasks", len(results), total)
			return results
		}

		r.observer.TaskStarted(ctx, task.Name, i+1, total)

		output, err := r.execute(ctx, transcriptText, task)
		if err != nil {
			r.logger.Error(ctx, "Task %q failed: %v", task.Name, err)
		}

		r.observer.TaskFinished(ctx, task.Name, i+1, total, err)
		results = append(results, AnalysisResult{Task: task.Name, Output: output, Err: err})
	}

	return results
}

func (r *implRunner) execute(ctx context.Context, transcriptText string, task profile.TaskDefinition) (string, error) {
	if r.split != nil && len(transcriptText) > r.chunkSize {
		return r.executeChunked(ctx, transcriptText, task)
	}

	return r.invoker.Invoke(ctx, session.Build(r.masterGuide, transcriptText, task))
}

const chunkInstruction = `You are analyzing one chunk of a larger transcript. Apply the instruction below to this chunk only.

INSTRUCTION:
%s

--- TRANSCRIPT CHUNK ---
%s`

const synthesisInstruction = `%s

The transcript was analyzed chunk by chunk with the instruction below. Merge the raw chunk results into one cohesive, de-duplicated report that fulfills the instruction.

INSTRUCTION:
%s

--- RAW CHUNK RESULTS ---
%s`

// executeChunked analyzes each chunk separately, then asks the model to
// synthesize the intermediate results into one report under the master
// guide. Used only for transcripts too large for a single request.
func (r *implRunner) executeChunked(ctx context.Context, transcriptText string, task profile.TaskDefinition) (string, error) {
	chunks := r.split.Split(transcriptText)
	r.logger.Info(ctx, "Task %q: transcript split into %d chunks", task.Name, len(chunks))

	intermediate := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		reply, err := r.invoker.Invoke(ctx, fmt.Sprintf(chunkInstruction, task.Prompt, chunk))
		if err != nil {
			return "", fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
		intermediate = append(intermediate, reply)
		r.logger.Debug(ctx, "Task %q: chunk %d/%d analyzed", task.Name, i+1, len(chunks))
	}

	synthesis := fmt.Sprintf(synthesisInstruction, r.masterGuide, task.Prompt, strings.Join(intermediate, "\n\n"))
	reply, err := r.invoker.Invoke(ctx, synthesis)
	if err != nil {
		return "", fmt.Errorf("synthesize %d chunk results: %w", len(chunks), err)
	}

	return reply, nil
}
