package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/moodmark/internal/config"
	"github.com/gorewood/moodmark/internal/export"
)

// newPreviewCmd creates the preview command.
func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <journal.csv> <date>",
		Short: "Print the note one day would be written as",
		Long: `Print the Markdown note a single day of a Daylio export renders to,
without writing it. The date accepts the same layouts as the export,
e.g. 2024-03-01, 01/03/2024 or "March 1, 2024".

Formatting flags apply exactly as they would for convert.

Examples:
  moodmark preview daylio_export.csv 2024-03-01
  moodmark preview export.csv 2024-03-01 --header 3 --colour
  moodmark preview export.csv 2024-03-01 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], args[1])
		},
	}

	config.RegisterFormatFlags(cmd.Flags())

	return cmd
}

func runPreview(cmd *cobra.Command, journalPath, date string) error {
	env, err := newRunEnv(cmd)
	if err != nil {
		return err
	}

	j, _, err := env.converter().Read(journalPath)
	if err != nil {
		return env.fail(err)
	}

	day, err := j.Lookup(date)
	if err != nil {
		return env.fail(err)
	}

	if env.printer.IsJSON() {
		view, err := export.ViewDay(day, "", true)
		if err != nil {
			return env.fail(err)
		}
		return env.printer.WriteJSON(view)
	}

	content, err := day.Render()
	if err != nil {
		return env.fail(err)
	}
	env.printer.Print("%s", content)
	return nil
}
