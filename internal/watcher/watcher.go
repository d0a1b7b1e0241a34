package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"scriptripper/internal/logger"
)

// settleDelay gives the writer time to finish before the transcript is
// read.
const settleDelay = 500 * time.Millisecond

type implWatcher struct {
	scriptsDir    string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start monitors the Scripts tree until the context is cancelled. Each new
// transcript is handled in its own goroutine, bounded by the semaphore;
// distinct transcripts never collide on output names, so concurrent runs
// are safe.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s for transcripts (max concurrent: %d)", w.scriptsDir, w.maxConcurrent)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for in-flight runs to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			w.handleCreate(ctx, event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

func (w *implWatcher) handleCreate(ctx context.Context, path string) {
	// A new directory directly under Scripts is a new profile folder.
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		if filepath.Dir(path) == filepath.Clean(w.scriptsDir) {
			if err := w.watcher.Add(path); err != nil {
				w.logger.Error(ctx, "Failed to watch new profile folder %s: %v", path, err)
			} else {
				w.logger.Info(ctx, "Watching new profile folder: %s", path)
			}
		}
		return
	}

	if !isTranscript(path) {
		w.logger.Debug(ctx, "Ignoring non-transcript file: %s", path)
		return
	}

	w.logger.Info(ctx, "New transcript detected: %s", path)
	time.Sleep(settleDelay)

	select {
	case w.semaphore <- struct{}{}:
		w.wg.Add(1)
		go func(transcriptPath string) {
			defer w.wg.Done()
			defer func() { <-w.semaphore }()

			if err := w.handler(ctx, transcriptPath); err != nil {
				w.logger.Error(ctx, "Failed to process %s: %v", transcriptPath, err)
			}
		}(path)
	case <-ctx.Done():
	}
}

// Stop closes the underlying filesystem watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isTranscript(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(path), ".txt")
}
