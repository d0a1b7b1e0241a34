package profile

// TaskDefinition is one named analysis instruction within a profile.
type TaskDefinition struct {
	Name   string `json:"task_name"`
	Prompt string `json:"prompt"`
}

// Profile is a named, ordered group of analysis tasks. It is immutable
// once loaded.
type Profile struct {
	Name  string
	Tasks []TaskDefinition
}

// TaskNames returns the task names in definition order.
func (p *Profile) TaskNames() []string {
	names := make([]string, len(p.Tasks))
	for i, t := range p.Tasks {
		names[i] = t.Name
	}
	return names
}

// Resolve maps selected task names to their definitions, preserving the
// order of the names given. Any name not defined in the profile yields an
// *UnknownTaskError and no definitions are returned.
func (p *Profile) Resolve(names []string) ([]TaskDefinition, error) {
	byName := make(map[string]TaskDefinition, len(p.Tasks))
	for _, t := range p.Tasks {
		byName[t.Name] = t
	}

	selected := make([]TaskDefinition, 0, len(names))
	for _, name := range names {
		task, ok := byName[name]
		if !ok {
			return nil, &UnknownTaskError{Profile: p.Name, Task: name}
		}
		selected = append(selected, task)
	}
	return selected, nil
}
