package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"scriptripper/internal/activity"
	"scriptripper/internal/output"
)

// InferProfile derives the profile name from the transcript's immediate
// parent folder, per the Scripts/<profile>/<transcript> layout.
func InferProfile(transcriptPath string) string {
	return filepath.Base(filepath.Dir(transcriptPath))
}

func (p *implPipeline) Process(ctx context.Context, transcriptPath string, selectedNames []string) (*output.RunOutcome, error) {
	if !p.acquire(transcriptPath) {
		return nil, fmt.Errorf("transcript %s is already being processed", transcriptPath)
	}
	defer p.release(transcriptPath)

	// All input validation happens before the first model call, so an
	// invalid run never spends API quota.
	profileName := InferProfile(transcriptPath)
	prof, err := p.store.Load(profileName)
	if err != nil {
		return nil, fmt.Errorf("resolve profile for %s: %w", transcriptPath, err)
	}

	if len(selectedNames) == 0 {
		selectedNames = prof.TaskNames()
	}
	selected, err := prof.Resolve(selectedNames)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(transcriptPath)
	if err != nil {
		return nil, fmt.Errorf("read transcript %s: %w", transcriptPath, err)
	}

	runID := uuid.NewString()
	started := time.Now()
	p.logger.Info(ctx, "Run %s: %s (profile %s, %d tasks)", runID, transcriptPath, profileName, len(selected))

	results := p.runner.Run(ctx, string(data), selected)

	// A cancelled run is not complete: nothing is materialized and the
	// transcript stays pending for a rerun.
	if ctx.Err() != nil && len(results) < len(selected) {
		p.logger.Warn(ctx, "Run %s cancelled after %d/%d tasks, transcript not archived", runID, len(results), len(selected))
		return nil, ctx.Err()
	}

	outcome, err := p.materializer.Write(ctx, transcriptPath, profileName, results)
	if err != nil {
		return nil, fmt.Errorf("materialize outputs: %w", err)
	}

	p.journalRun(ctx, runID, started, transcriptPath, profileName, selectedNames, outcome)
	p.runHook(ctx, transcriptPath, profileName, outcome)

	p.logger.Info(ctx, "Run %s complete: %d/%d tasks succeeded, archived=%v (%s)",
		runID, outcome.SuccessCount(), len(results), outcome.Archived(), time.Since(started).Round(time.Millisecond))

	return outcome, nil
}

func (p *implPipeline) journalRun(ctx context.Context, runID string, started time.Time, transcriptPath, profileName string, tasks []string, outcome *output.RunOutcome) {
	if p.journal == nil {
		return
	}

	entry := activity.Entry{
		RunID:      runID,
		Timestamp:  started,
		Transcript: filepath.Base(transcriptPath),
		Profile:    profileName,
		Tasks:      tasks,
		Succeeded:  outcome.SuccessCount(),
		Failed:     len(outcome.Results) - outcome.SuccessCount(),
		Archived:   outcome.Archived(),
	}
	if err := p.journal.Record(ctx, entry); err != nil {
		p.logger.Warn(ctx, "Failed to journal run %s: %v", runID, err)
	}
}

func (p *implPipeline) runHook(ctx context.Context, transcriptPath, profileName string, outcome *output.RunOutcome) {
	if p.postRunHook == "" || p.executor == nil {
		return
	}

	args := []string{
		transcriptPath,
		profileName,
		strconv.Itoa(outcome.SuccessCount()),
		strconv.Itoa(len(outcome.Results) - outcome.SuccessCount()),
	}
	if _, err := p.executor.Execute(ctx, p.postRunHook, args...); err != nil {
		p.logger.Warn(ctx, "Post-run hook failed: %v", err)
	}
}

func (p *implPipeline) acquire(transcriptPath string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inFlight[transcriptPath] {
		return false
	}
	p.inFlight[transcriptPath] = true
	return true
}

func (p *implPipeline) release(transcriptPath string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inFlight, transcriptPath)
}
