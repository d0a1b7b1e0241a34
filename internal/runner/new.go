package runner

import (
	"scriptripper/internal/llm"
	"scriptripper/internal/logger"
	"scriptripper/internal/splitter"
)

type implRunner struct {
	invoker     llm.Invoker
	masterGuide string
	split       *splitter.Splitter // nil when chunked mode is disabled
	chunkSize   int
	observer    Observer
	logger      logger.Logger
}

// Options tunes optional runner behavior.
type Options struct {
	// ChunkSize enables chunked analysis for transcripts longer than this
	// many characters. Zero disables chunking entirely.
	ChunkSize    int
	ChunkOverlap int
	// Observer receives progress notifications. Defaults to a logging
	// observer when nil.
	Observer Observer
}

// New creates a Runner issuing one model call per task (or per chunk, in
// chunked mode) against the given invoker.
func New(invoker llm.Invoker, masterGuide string, log logger.Logger, opts Options) Runner {
	r := &implRunner{
		invoker:     invoker,
		masterGuide: masterGuide,
		chunkSize:   opts.ChunkSize,
		observer:    opts.Observer,
		logger:      log,
	}
	if opts.ChunkSize > 0 {
		r.split = splitter.New(opts.ChunkSize, opts.ChunkOverlap)
	}
	if r.observer == nil {
		r.observer = NewLogObserver(log)
	}
	return r
}
