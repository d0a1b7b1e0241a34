package output

import "fmt"

// ArchiveError reports a failed transcript move into the archive
// directory. The transcript and any written outputs are left intact.
type ArchiveError struct {
	TranscriptPath string
	ArchivePath    string
	Err            error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("archive %s to %s: %v", e.TranscriptPath, e.ArchivePath, e.Err)
}

func (e *ArchiveError) Unwrap() error { return e.Err }
