package pipeline

import (
	"context"

	"scriptripper/internal/output"
)

// Pipeline runs the whole analysis flow for one transcript: profile
// inference and validation, task resolution, sequential model calls,
// output materialization, journaling, and the post-run hook.
type Pipeline interface {
	// Process analyzes one transcript. selectedNames is the ordered task
	// selection; nil or empty selects every task in the profile. The
	// profile is inferred from the transcript's parent folder and the run
	// is rejected before any model call if the profile or any selected
	// task does not exist.
	//
	// On cancellation mid-run, no outputs are materialized and the
	// transcript stays pending; Process returns the context error.
	Process(ctx context.Context, transcriptPath string, selectedNames []string) (*output.RunOutcome, error)
}
