package watcher

import "context"

// Watcher monitors the Scripts tree for new transcripts.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one newly detected transcript.
type EventHandler func(ctx context.Context, transcriptPath string) error
