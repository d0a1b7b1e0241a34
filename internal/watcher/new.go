package watcher

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"scriptripper/internal/logger"
)

// New creates a Watcher over scriptsDir and every profile sub-folder in it,
// with at most maxConcurrent transcripts processed at once.
func New(scriptsDir string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(scriptsDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", scriptsDir, err)
	}

	// Watch each existing profile folder; new folders are added as they
	// appear.
	entries, err := os.ReadDir(scriptsDir)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("read scripts dir %s: %w", scriptsDir, err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if err := fsw.Add(filepath.Join(scriptsDir, e.Name())); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch profile folder %s: %w", e.Name(), err)
		}
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		scriptsDir:    scriptsDir,
		handler:       handler,
		logger:        log,
		watcher:       fsw,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
	}, nil
}
