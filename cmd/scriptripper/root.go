package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "scriptripper",
		Short: "Deep analysis of meeting and presentation transcripts",
		Long: `ScriptRipper sends transcripts to the Gemini API under a fixed
instructional template, one request per selected analysis task, and writes
each reply to a Markdown file in the Outputs folder. Processed transcripts
are moved to the Ripped folder so they are never analyzed twice.

Transcripts live in Scripts/<profile>/; each profile's tasks are defined in
prompts/<profile>_prompts.json, and prompts/master_prompt.md is prepended
to every request.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the yaml config file")

	cmd.AddCommand(
		newRunCommand(&configPath),
		newProfilesCommand(&configPath),
		newWatchCommand(&configPath),
	)

	return cmd
}
