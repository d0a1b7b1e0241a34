package output

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scriptripper/internal/llm"
	"scriptripper/internal/logger"
	"scriptripper/internal/runner"
)

func quietLogger() logger.Logger {
	return logger.NewWithWriter(&strings.Builder{}, "error")
}

type fixture struct {
	mat        Materializer
	outputsDir string
	archiveDir string
	transcript string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	f := &fixture{
		outputsDir: filepath.Join(root, "Outputs"),
		archiveDir: filepath.Join(root, "Ripped"),
		transcript: filepath.Join(root, "Scripts", "meetings", "standup.txt"),
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(f.transcript), 0755))
	require.NoError(t, os.WriteFile(f.transcript, []byte("raw transcript"), 0644))
	f.mat = New(f.outputsDir, f.archiveDir, false, quietLogger())
	return f
}

func TestWriteSuccessAndFailureMix(t *testing.T) {
	f := newFixture(t)

	results := []runner.AnalysisResult{
		{Task: "summary", Output: "# Standup\n..."},
		{Task: "action_items", Err: &llm.APIError{Code: 429, Message: "too many requests"}},
	}

	outcome, err := f.mat.Write(context.Background(), f.transcript, "meetings", results)
	require.NoError(t, err)

	// Successful task written with its content.
	data, err := os.ReadFile(filepath.Join(f.outputsDir, "standup__summary.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Standup\n...", string(data))

	// Failed task left no file but is still reported.
	_, err = os.Stat(filepath.Join(f.outputsDir, "standup__action_items.md"))
	assert.True(t, os.IsNotExist(err))
	require.Len(t, outcome.Results, 2)
	assert.Equal(t, 1, outcome.SuccessCount())
	var apiErr *llm.APIError
	require.ErrorAs(t, outcome.Results[1].Err, &apiErr)
	assert.Equal(t, 429, apiErr.Code)

	// Transcript moved, not copied.
	assert.True(t, outcome.Archived())
	assert.Equal(t, filepath.Join(f.archiveDir, "standup.txt"), outcome.ArchivedPath)
	_, err = os.Stat(f.transcript)
	assert.True(t, os.IsNotExist(err))
	archived, err := os.ReadFile(outcome.ArchivedPath)
	require.NoError(t, err)
	assert.Equal(t, "raw transcript", string(archived))
}

func TestWriteOverwritesPriorOutput(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(f.outputsDir, "standup__summary.md")
	require.NoError(t, os.MkdirAll(f.outputsDir, 0755))
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	_, err := f.mat.Write(context.Background(), f.transcript, "meetings",
		[]runner.AnalysisResult{{Task: "summary", Output: "fresh"}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data), "last write wins, never a merge")

	entries, err := os.ReadDir(f.outputsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "overwrite must not leave a second file")
}

func TestWriteArchivesWithZeroSuccesses(t *testing.T) {
	f := newFixture(t)

	var results []runner.AnalysisResult
	for _, task := range []string{"t1", "t2", "t3", "t4", "t5"} {
		results = append(results, runner.AnalysisResult{Task: task, Err: errors.New("failed")})
	}

	outcome, err := f.mat.Write(context.Background(), f.transcript, "meetings", results)
	require.NoError(t, err)

	assert.True(t, outcome.Archived(), "archiving is unconditional once the run completes")
	assert.Empty(t, outcome.Files)
	_, statErr := os.Stat(filepath.Join(f.archiveDir, "standup.txt"))
	assert.NoError(t, statErr)
}

func TestWriteArchiveDestinationExists(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.MkdirAll(f.archiveDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(f.archiveDir, "standup.txt"), []byte("older run"), 0644))

	outcome, err := f.mat.Write(context.Background(), f.transcript, "meetings",
		[]runner.AnalysisResult{{Task: "summary", Output: "content"}})
	require.NoError(t, err)

	// Outputs written, archive error surfaced, transcript untouched.
	require.Len(t, outcome.Files, 1)
	assert.NoError(t, outcome.Files[0].Err)
	assert.False(t, outcome.Archived())
	var archiveErr *ArchiveError
	require.ErrorAs(t, outcome.ArchiveErr, &archiveErr)

	data, readErr := os.ReadFile(f.transcript)
	require.NoError(t, readErr, "failed archive must not delete the transcript")
	assert.Equal(t, "raw transcript", string(data))
	prior, readErr := os.ReadFile(filepath.Join(f.archiveDir, "standup.txt"))
	require.NoError(t, readErr)
	assert.Equal(t, "older run", string(prior), "failed archive must not clobber the destination")
}

func TestWriteCreatesDirectoriesOnDemand(t *testing.T) {
	f := newFixture(t)

	_, err := os.Stat(f.outputsDir)
	require.True(t, os.IsNotExist(err))

	outcome, err := f.mat.Write(context.Background(), f.transcript, "meetings",
		[]runner.AnalysisResult{{Task: "summary", Output: "content"}})
	require.NoError(t, err)
	assert.True(t, outcome.Archived())
}

func TestWriteDocxTwin(t *testing.T) {
	f := newFixture(t)
	f.mat = New(f.outputsDir, f.archiveDir, true, quietLogger())

	_, err := f.mat.Write(context.Background(), f.transcript, "meetings",
		[]runner.AnalysisResult{{Task: "summary", Output: "# Heading\n\n- point one\n- **key** point\n\n1. step"}})
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(f.outputsDir, "standup__summary.docx"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestTaskSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"summary", "summary"},
		{"Action Items", "action-items"},
		{"Q&A Review", "qanda-review"},
		{"Pros/Cons", "proscons"},
	}

	for _, tt := range tests {
		if got := taskSlug(tt.in); got != tt.want {
			t.Errorf("taskSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
