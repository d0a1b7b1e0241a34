package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"scriptripper/internal/runner"
)

// Write materializes the results of one completed run. Successful tasks
// become Markdown files named {transcriptBase}__{taskSlug}.md; existing
// files are overwritten, never merged. The transcript is then moved to the
// archive directory regardless of how many tasks succeeded.
func (m *implMaterializer) Write(ctx context.Context, transcriptPath, profileName string, results []runner.AnalysisResult) (*RunOutcome, error) {
	if err := os.MkdirAll(m.outputsDir, 0755); err != nil {
		return nil, fmt.Errorf("create outputs dir %s: %w", m.outputsDir, err)
	}

	base := transcriptBase(transcriptPath)
	outcome := &RunOutcome{
		TranscriptPath: transcriptPath,
		Results:        results,
	}

	for _, res := range results {
		if !res.Succeeded() {
			m.logger.Debug(ctx, "Task %q failed, no output file", res.Task)
			continue
		}

		path := filepath.Join(m.outputsDir, base+"__"+taskSlug(res.Task)+".md")
		record := FileRecord{Task: res.Task, Path: path}

		if err := os.WriteFile(path, []byte(res.Output), 0644); err != nil {
			record.Err = fmt.Errorf("write %s: %w", path, err)
			m.logger.Error(ctx, "Failed to write output for task %q: %v", res.Task, record.Err)
			outcome.Files = append(outcome.Files, record)
			continue
		}
		m.logger.Info(ctx, "Wrote %s", path)

		if m.docx {
			docxPath := strings.TrimSuffix(path, ".md") + ".docx"
			if err := renderDocx(res.Task, res.Output, docxPath); err != nil {
				// The Markdown file is the primary artifact; a docx render
				// failure does not fail the record.
				m.logger.Warn(ctx, "Failed to render docx for task %q: %v", res.Task, err)
			}
		}

		outcome.Files = append(outcome.Files, record)
	}

	archivedPath, err := m.archive(ctx, transcriptPath)
	if err != nil {
		outcome.ArchiveErr = err
		m.logger.Error(ctx, "Archive failed: %v", err)
	} else {
		outcome.ArchivedPath = archivedPath
	}

	return outcome, nil
}

// archive moves the transcript into the archive directory. The move is a
// rename, never a copy, so the transcript exists in exactly one place. A
// failed move leaves the transcript where it was.
func (m *implMaterializer) archive(ctx context.Context, transcriptPath string) (string, error) {
	m.archiveMu.Lock()
	defer m.archiveMu.Unlock()

	if err := os.MkdirAll(m.archiveDir, 0755); err != nil {
		return "", &ArchiveError{TranscriptPath: transcriptPath, ArchivePath: m.archiveDir, Err: err}
	}

	dest := filepath.Join(m.archiveDir, filepath.Base(transcriptPath))
	if _, err := os.Stat(dest); err == nil {
		return "", &ArchiveError{
			TranscriptPath: transcriptPath,
			ArchivePath:    dest,
			Err:            fmt.Errorf("destination already exists"),
		}
	}

	if err := os.Rename(transcriptPath, dest); err != nil {
		return "", &ArchiveError{TranscriptPath: transcriptPath, ArchivePath: dest, Err: err}
	}

	m.logger.Info(ctx, "Archived transcript: %s -> %s", transcriptPath, dest)
	return dest, nil
}

func transcriptBase(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// taskSlug derives the filename fragment for a task: lowercased, spaces to
// dashes, ampersands spelled out, slashes dropped.
func taskSlug(taskName string) string {
	s := strings.ToLower(taskName)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "&", "and")
	s = strings.ReplaceAll(s, "/", "")
	return s
}
