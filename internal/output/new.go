package output

import (
	"sync"

	"scriptripper/internal/logger"
)

type implMaterializer struct {
	outputsDir string
	archiveDir string
	docx       bool
	logger     logger.Logger

	// Serializes archive moves so two runs never race on the same path.
	archiveMu sync.Mutex
}

// New creates a Materializer writing Markdown into outputsDir and moving
// processed transcripts into archiveDir. With docx enabled, each Markdown
// file also gets a styled .docx twin.
func New(outputsDir, archiveDir string, docx bool, log logger.Logger) Materializer {
	return &implMaterializer{
		outputsDir: outputsDir,
		archiveDir: archiveDir,
		docx:       docx,
		logger:     log,
	}
}
