package profile

type implStore struct {
	scriptsDir string
	promptsDir string
}

// New creates a Store reading transcript folders from scriptsDir and
// task-definition files from promptsDir.
func New(scriptsDir, promptsDir string) Store {
	return &implStore{
		scriptsDir: scriptsDir,
		promptsDir: promptsDir,
	}
}
