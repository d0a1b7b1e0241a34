package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"scriptripper/internal/output"
	"scriptripper/internal/pipeline"
	"scriptripper/internal/selector"
)

func newRunCommand(configPath *string) *cobra.Command {
	var taskNames []string
	var allTasks bool

	cmd := &cobra.Command{
		Use:   "run [transcript]",
		Short: "Analyze one transcript",
		Long: `Analyze one transcript from Scripts/<profile>/.

The profile is inferred from the transcript's parent folder. With no
argument, interactive pickers ask for a profile and one of its pending
transcripts. Without flags, an interactive checklist asks which of the
profile's tasks to run; --tasks selects tasks directly and --all runs
every task without asking.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}

			var transcriptPath string
			if len(args) == 1 {
				transcriptPath = args[0]
			} else {
				transcriptPath, err = selectTranscriptInteractively(a)
				if err != nil {
					return err
				}
			}
			selected := taskNames
			if len(selected) == 0 && !allTasks {
				selected, err = selectTasksInteractively(a, transcriptPath)
				if err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			outcome, err := a.pipeline.Process(ctx, transcriptPath, selected)
			if err != nil {
				return err
			}

			printOutcome(cmd, outcome)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&taskNames, "tasks", "t", nil, "comma-separated task names to run, in order")
	cmd.Flags().BoolVarP(&allTasks, "all", "a", false, "run every task in the profile without asking")

	return cmd
}

// selectTranscriptInteractively mirrors a transcript drop done by hand:
// pick a profile, then one of the .txt files waiting in its folder.
func selectTranscriptInteractively(a *app) (string, error) {
	names, err := a.store.List()
	if err != nil {
		return "", err
	}

	sel := selector.New(os.Stdin, os.Stdout)
	profileName, err := sel.SelectProfile(names)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(a.cfg.Paths.Scripts, profileName)
	pending, err := listTranscripts(dir)
	if err != nil {
		return "", fmt.Errorf("list transcripts in %s: %w", dir, err)
	}

	name, err := sel.SelectTranscript(profileName, pending)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// listTranscripts returns the transcript file names in dir, sorted.
func listTranscripts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), ".txt") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func selectTasksInteractively(a *app, transcriptPath string) ([]string, error) {
	profileName := pipeline.InferProfile(transcriptPath)
	prof, err := a.store.Load(profileName)
	if err != nil {
		return nil, fmt.Errorf("resolve profile for %s: %w", transcriptPath, err)
	}

	sel := selector.New(os.Stdin, os.Stdout)
	return sel.SelectTasks(prof.Name, prof.TaskNames())
}

// printOutcome writes the itemized run result: every task's status, and
// whether the transcript reached the archive.
func printOutcome(cmd *cobra.Command, outcome *output.RunOutcome) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "\n%d/%d tasks succeeded\n", outcome.SuccessCount(), len(outcome.Results))
	for _, res := range outcome.Results {
		if res.Succeeded() {
			fmt.Fprintf(out, "  ok      %s\n", res.Task)
		} else {
			fmt.Fprintf(out, "  FAILED  %s: %v\n", res.Task, res.Err)
		}
	}
	for _, file := range outcome.Files {
		if file.Err != nil {
			fmt.Fprintf(out, "  WRITE FAILED  %s: %v\n", file.Task, file.Err)
		} else {
			fmt.Fprintf(out, "  wrote   %s\n", file.Path)
		}
	}

	if outcome.Archived() {
		fmt.Fprintf(out, "archived: %s\n", outcome.ArchivedPath)
	} else {
		fmt.Fprintf(out, "ARCHIVE FAILED: %v\n", outcome.ArchiveErr)
	}
}
