package pipeline

import (
	"sync"

	"scriptripper/internal/activity"
	"scriptripper/internal/logger"
	"scriptripper/internal/output"
	"scriptripper/internal/profile"
	"scriptripper/internal/runner"
	"scriptripper/pkg/executor"
)

type implPipeline struct {
	store        profile.Store
	runner       runner.Runner
	materializer output.Materializer
	journal      activity.Journal
	executor     executor.Executor
	postRunHook  string
	logger       logger.Logger

	mu       sync.Mutex
	inFlight map[string]bool
}

// New creates a Pipeline. journal may be nil to disable the activity
// journal; postRunHook may be empty to disable the hook.
func New(
	store profile.Store,
	run runner.Runner,
	mat output.Materializer,
	journal activity.Journal,
	exec executor.Executor,
	postRunHook string,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		store:        store,
		runner:       run,
		materializer: mat,
		journal:      journal,
		executor:     exec,
		postRunHook:  postRunHook,
		logger:       log,
		inFlight:     make(map[string]bool),
	}
}
