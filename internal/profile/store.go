package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const resourceSuffix = "_prompts.json"

func (s *implStore) resourcePath(name string) string {
	return filepath.Join(s.promptsDir, name+resourceSuffix)
}

// List returns the names for which both Scripts/<name>/ and
// prompts/<name>_prompts.json exist.
func (s *implStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.promptsDir)
	if err != nil {
		return nil, fmt.Errorf("read prompts dir %s: %w", s.promptsDir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), resourceSuffix) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), resourceSuffix)
		if name == "" {
			continue
		}
		info, err := os.Stat(filepath.Join(s.scriptsDir, name))
		if err != nil || !info.IsDir() {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

func (s *implStore) Load(name string) (*Profile, error) {
	path := s.resourcePath(name)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("profile %q: %w", name, ErrProfileNotFound)
		}
		return nil, &LoadError{Resource: path, Err: err}
	}

	var tasks []TaskDefinition
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &LoadError{Resource: path, Offset: parseOffset(err), Err: err}
	}

	if len(tasks) == 0 {
		return nil, &LoadError{Resource: path, Err: fmt.Errorf("profile defines no tasks")}
	}

	seen := make(map[string]bool, len(tasks))
	for i, t := range tasks {
		if strings.TrimSpace(t.Name) == "" {
			return nil, &LoadError{Resource: path, Err: fmt.Errorf("task %d has no task_name", i)}
		}
		if seen[t.Name] {
			return nil, &LoadError{Resource: path, Err: fmt.Errorf("duplicate task name %q", t.Name)}
		}
		seen[t.Name] = true
		if strings.TrimSpace(t.Prompt) == "" {
			return nil, &LoadError{Resource: path, Err: fmt.Errorf("task %q has an empty prompt", t.Name)}
		}
	}

	return &Profile{Name: name, Tasks: tasks}, nil
}

// parseOffset extracts the byte offset from a json decoding error, if the
// error carries one.
func parseOffset(err error) int64 {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return syn.Offset
	}
	var typ *json.UnmarshalTypeError
	if errors.As(err, &typ) {
		return typ.Offset
	}
	return 0
}
