package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProfilesCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List available profiles and their tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}

			names, err := a.store.List()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles found. A profile needs both a Scripts/<name>/ folder and a prompts/<name>_prompts.json file.")
				return nil
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				prof, err := a.store.Load(name)
				if err != nil {
					// A malformed profile is reported but does not hide
					// the healthy ones.
					fmt.Fprintf(out, "%s (unusable: %v)\n", name, err)
					continue
				}
				fmt.Fprintf(out, "%s (%d tasks)\n", prof.Name, len(prof.Tasks))
				for _, task := range prof.Tasks {
					fmt.Fprintf(out, "  - %s\n", task.Name)
				}
			}
			return nil
		},
	}
}
