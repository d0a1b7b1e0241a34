package output

import (
	"context"

	"scriptripper/internal/runner"
)

// FileRecord is one attempted output write: the task it belongs to, the
// destination path, and the write error if the file could not be produced.
type FileRecord struct {
	Task string
	Path string
	Err  error
}

// RunOutcome is the itemized result of one completed run. It is created
// only after every selected task has been attempted.
type RunOutcome struct {
	TranscriptPath string
	ArchivedPath   string // empty when the archive move failed
	Results        []runner.AnalysisResult
	Files          []FileRecord
	ArchiveErr     error
}

// Archived reports whether the transcript reached the archive directory.
func (o *RunOutcome) Archived() bool { return o.ArchiveErr == nil }

// SuccessCount returns how many tasks produced a reply.
func (o *RunOutcome) SuccessCount() int {
	n := 0
	for _, r := range o.Results {
		if r.Succeeded() {
			n++
		}
	}
	return n
}

// Materializer writes per-task Markdown files and archives the processed
// transcript. It is the only component permitted to move the transcript.
type Materializer interface {
	// Write produces one Markdown file per successful result, overwriting
	// existing files of the same name, then moves the transcript into the
	// archive directory. Archiving is unconditional once the run is
	// complete, even with zero successes; an archive failure is reported
	// in the outcome without touching the transcript or the written files.
	Write(ctx context.Context, transcriptPath, profileName string, results []runner.AnalysisResult) (*RunOutcome, error)
}
