package profile

import (
	"errors"
	"fmt"
)

// ErrProfileNotFound is returned by Load when no task-definition resource
// exists for the requested profile name.
var ErrProfileNotFound = errors.New("profile not found")

// LoadError reports a malformed task-definition resource. It is fatal for
// that profile; other profiles are unaffected.
type LoadError struct {
	Resource string
	Offset   int64 // byte offset of the parse error, 0 when not applicable
	Err      error
}

func (e *LoadError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("load profile resource %s (offset %d): %v", e.Resource, e.Offset, e.Err)
	}
	return fmt.Sprintf("load profile resource %s: %v", e.Resource, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// UnknownTaskError reports a selected task name that does not exist in the
// resolved profile. Selection is validated before any model call is made.
type UnknownTaskError struct {
	Profile string
	Task    string
}

func (e *UnknownTaskError) Error() string {
	return fmt.Sprintf("unknown task %q in profile %q", e.Task, e.Profile)
}
