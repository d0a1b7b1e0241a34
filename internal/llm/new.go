package llm

import (
	"sync"
	"time"

	"scriptripper/internal/logger"
)

type implInvoker struct {
	apiKeys []string
	model   string
	timeout time.Duration
	logger  logger.Logger

	// One Invoker is shared by concurrent runs in watch mode, so the
	// rotation index needs the lock.
	mu         sync.Mutex
	currentKey int
}

// New creates an Invoker against the Gemini API that rotates through the
// supplied API keys on quota errors.
func New(apiKeys []string, model string, timeout time.Duration, log logger.Logger) Invoker {
	return &implInvoker{
		apiKeys: apiKeys,
		model:   model,
		timeout: timeout,
		logger:  log,
	}
}
