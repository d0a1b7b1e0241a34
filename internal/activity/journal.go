// Package activity appends one journal record per completed run, so there
// is a durable trail of which transcripts were processed, when, and with
// what outcome.
package activity

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var header = []string{"run_id", "timestamp", "transcript", "profile", "tasks", "succeeded", "failed", "archived"}

// Entry is one run's journal record.
type Entry struct {
	RunID      string
	Timestamp  time.Time
	Transcript string
	Profile    string
	Tasks      []string
	Succeeded  int
	Failed     int
	Archived   bool
}

// Journal records run entries. Recording failures are reported to the
// caller but are expected to be treated as warnings, never fatal.
type Journal interface {
	Record(ctx context.Context, e Entry) error
}

type implJournal struct {
	path string
	mu   sync.Mutex
}

// New creates a Journal appending CSV rows to the file at path. The header
// row is written when the file is new or empty.
func New(path string) Journal {
	return &implJournal{path: path}
}

func (j *implJournal) Record(ctx context.Context, e Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open activity journal %s: %w", j.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat activity journal %s: %w", j.path, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write journal header: %w", err)
		}
	}

	row := []string{
		e.RunID,
		e.Timestamp.Format(time.RFC3339),
		e.Transcript,
		e.Profile,
		strings.Join(e.Tasks, ", "),
		strconv.Itoa(e.Succeeded),
		strconv.Itoa(e.Failed),
		strconv.FormatBool(e.Archived),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write journal row: %w", err)
	}

	w.Flush()
	return w.Error()
}
