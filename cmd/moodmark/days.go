package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/moodmark/internal/config"
	"github.com/gorewood/moodmark/internal/export"
	"github.com/gorewood/moodmark/internal/journal"
	"github.com/gorewood/moodmark/internal/mood"
	"github.com/gorewood/moodmark/internal/output"
)

// newDaysCmd creates the days command.
func newDaysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "days <journal.csv>",
		Short: "List the days of a Daylio export without writing anything",
		Long: `List every day of a Daylio CSV export with its entry count, moods and
the note path it would be written to.

Examples:
  moodmark days daylio_export.csv
  moodmark days export.csv --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDays(cmd, args[0])
		},
	}

	config.RegisterFormatFlags(cmd.Flags())

	return cmd
}

func runDays(cmd *cobra.Command, journalPath string) error {
	env, err := newRunEnv(cmd)
	if err != nil {
		return err
	}

	j, _, err := env.converter().Read(journalPath)
	if err != nil {
		return env.fail(err)
	}

	if env.printer.IsJSON() {
		views, err := export.Views(j.Days(), "", false)
		if err != nil {
			return env.fail(err)
		}
		return export.FormatJSON(env.printer, views)
	}

	printDays(env.printer, j)
	return nil
}

func printDays(printer *output.Printer, j *journal.Journal) {
	rows := make([][]string, 0, j.Len())
	for _, day := range j.Days() {
		if day.IsEmpty() {
			continue
		}
		painted := make([]string, 0, day.Len())
		for _, entry := range day.Entries() {
			painted = append(painted, printer.Paint(mood.TerminalColour(entry.Group()), entry.Mood()))
		}
		rows = append(rows, []string{
			day.String(),
			fmt.Sprint(day.Len()),
			strings.Join(painted, ", "),
			printer.Dim(export.RelativePath(day.Date())),
		})
	}

	printer.Table([]string{"DATE", "ENTRIES", "MOODS", "NOTE"}, rows)
	printer.Println()
	printer.Print("%d days, %d entries\n", len(rows), j.EntryCount())
}
