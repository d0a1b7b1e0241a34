package profile

// Store reads profiles from the declarative resources on disk. A profile
// exists iff a transcript sub-folder and a matching task-definition file
// both exist.
type Store interface {
	// List enumerates available profile names, sorted. It re-scans the
	// filesystem on every call; callers may cache the result.
	List() ([]string, error)

	// Load reads and validates the task definitions for one profile.
	// Returns ErrProfileNotFound if the resource is absent, or *LoadError
	// if it is malformed.
	Load(name string) (*Profile, error)
}
