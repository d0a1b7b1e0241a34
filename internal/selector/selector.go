// Package selector collects the user's profile and task choices through an
// interactive terminal form.
package selector

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Selector is the interactive selection collaborator. The returned task
// list preserves the profile's task order.
type Selector interface {
	SelectProfile(names []string) (string, error)
	SelectTranscript(profileName string, names []string) (string, error)
	SelectTasks(profileName string, taskNames []string) ([]string, error)
}

type implSelector struct {
	in  io.Reader
	out io.Writer
}

// New creates a Selector reading from in and writing to out. Pass os.Stdin
// and os.Stdout for interactive use.
func New(in io.Reader, out io.Writer) Selector {
	return &implSelector{in: in, out: out}
}

// SelectProfile asks the user to pick one analysis profile.
func (s *implSelector) SelectProfile(names []string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("no profiles available")
	}

	var chosen string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Analysis profile").
				Options(huh.NewOptions(names...)...).
				Value(&chosen),
		),
	)

	if err := s.run(form); err != nil {
		return "", fmt.Errorf("profile selection failed: %w", err)
	}
	return chosen, nil
}

// SelectTranscript asks the user to pick one pending transcript from the
// chosen profile's folder.
func (s *implSelector) SelectTranscript(profileName string, names []string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("no pending transcripts for profile %q", profileName)
	}

	var chosen string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Transcript (%s)", profileName)).
				Options(huh.NewOptions(names...)...).
				Value(&chosen),
		),
	)

	if err := s.run(form); err != nil {
		return "", fmt.Errorf("transcript selection failed: %w", err)
	}
	return chosen, nil
}

// SelectTasks asks the user which tasks to run; all tasks are preselected.
func (s *implSelector) SelectTasks(profileName string, taskNames []string) ([]string, error) {
	if len(taskNames) == 0 {
		return nil, fmt.Errorf("profile %q has no tasks", profileName)
	}

	options := make([]huh.Option[string], len(taskNames))
	for i, name := range taskNames {
		options[i] = huh.NewOption(name, name).Selected(true)
	}

	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(fmt.Sprintf("Tasks to run (%s)", profileName)).
				Options(options...).
				Value(&selected).
				Validate(func(chosen []string) error {
					if len(chosen) == 0 {
						return fmt.Errorf("select at least one task")
					}
					return nil
				}),
		),
	)

	if err := s.run(form); err != nil {
		return nil, fmt.Errorf("task selection failed: %w", err)
	}
	return selected, nil
}

func (s *implSelector) run(form *huh.Form) error {
	form = form.WithInput(s.in).WithOutput(s.out)

	// Accessible mode for non-TTY input (tests, piped input).
	if f, ok := s.in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	return form.Run()
}
