package runner

import (
	"context"

	"scriptripper/internal/logger"
)

// logObserver reports progress to the log collaborator.
type logObserver struct {
	logger logger.Logger
}

// NewLogObserver creates the default Observer, which writes progress lines
// through the given logger.
func NewLogObserver(log logger.Logger) Observer {
	return &logObserver{logger: log}
}

func (o *logObserver) TaskStarted(ctx context.Context, task string, index, total int) {
	o.logger.Info(ctx, "[%d/%d] Running task: %s", index, total, task)
}

func (o *logObserver) TaskFinished(ctx context.Context, task string, index, total int, err error) {
	if err != nil {
		o.logger.Warn(ctx, "[%d/%d] Task %s failed: %v", index, total, task, err)
		return
	}
	o.logger.Info(ctx, "[%d/%d] Task %s complete", index, total, task)
}
