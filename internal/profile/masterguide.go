package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MasterGuideFile is the single global instruction block prepended to every
// session. Loaded once at process start.
const MasterGuideFile = "master_prompt.md"

// LoadMasterGuide reads the master style guide from promptsDir. A missing
// or empty guide is a startup-fatal condition.
func LoadMasterGuide(promptsDir string) (string, error) {
	path := filepath.Join(promptsDir, MasterGuideFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read master guide %s: %w", path, err)
	}

	guide := string(data)
	if strings.TrimSpace(guide) == "" {
		return "", fmt.Errorf("master guide %s is empty", path)
	}

	return guide, nil
}
