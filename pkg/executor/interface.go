package executor

import "context"

// Executor runs an external command, returning its stdout. Used for the
// optional post-run hook.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
