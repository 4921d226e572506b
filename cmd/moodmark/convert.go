package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/moodmark/internal/config"
	"github.com/gorewood/moodmark/internal/convert"
	"github.com/gorewood/moodmark/internal/export"
	"github.com/gorewood/moodmark/internal/output"
)

// newConvertCmd creates the convert command.
func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <journal.csv> <destination>",
		Short: "Write one Markdown note per day of a Daylio export",
		Long: `Write one Markdown note per day of a Daylio CSV export.

Notes are written to <destination>/YYYY/MM/YYYY-MM-DD.md. A note that does
not exist yet is created; one whose content is unchanged is skipped. When a
note exists with different content, --force decides:
  accept   overwrite it
  reject   keep the existing note
  (unset)  ask for each note (in --json mode the note is kept)

Rows that cannot be read are logged and skipped; the rest of the journal is
still converted.

Examples:
  moodmark convert daylio_export.csv ~/vault/journal
  moodmark convert export.csv ~/vault --force accept --tags daylio,mood
  moodmark convert export.csv ~/vault --header 3 --colour --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], args[1])
		},
	}

	config.RegisterFormatFlags(cmd.Flags())
	config.RegisterForceFlag(cmd.Flags())

	return cmd
}

func runConvert(cmd *cobra.Command, journalPath, destination string) error {
	env, err := newRunEnv(cmd)
	if err != nil {
		return err
	}

	var decider export.Decider
	if !env.opts.Force.IsSet() && !env.printer.IsJSON() {
		decider = export.NewPromptDecider(cmd.InOrStdin(), cmd.ErrOrStderr())
	}

	result, err := env.converter().Convert(cmd.Context(), journalPath, destination, decider)
	if err != nil {
		if result.Export.Written() > 0 || result.Export.Skipped() > 0 {
			env.logger.Info().Str("summary", result.Export.String()).Msg("partial conversion")
		}
		return env.fail(err)
	}

	if err := printConvertResult(env.printer, result); err != nil {
		return err
	}

	if result.Export.Failed > 0 {
		exitErr := output.NewSystemError(fmt.Sprintf("%d notes could not be written", result.Export.Failed))
		env.printer.Error(exitErr)
		return exitErr
	}
	return nil
}

func printConvertResult(printer *output.Printer, result convert.Result) error {
	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printer.Section("Journal")
	printer.KeyValue("File", result.Journal)
	printer.KeyValue("Rows", fmt.Sprintf("%d read, %d converted, %d skipped",
		result.Ingest.Attempted, result.Ingest.Succeeded, result.Ingest.Failed))
	printer.KeyValue("Days", fmt.Sprintf("%d (%d entries)", result.Days, result.Entries))
	if result.CustomMoods > 0 {
		printer.KeyValue("Custom moods", fmt.Sprint(result.CustomMoods))
	}
	if result.Ingest.Warnings > 0 {
		printer.KeyValue("Warnings", printer.Dim(fmt.Sprintf("%d (see the log above)", result.Ingest.Warnings)))
	}

	printer.Section("Vault")
	printer.KeyValue("Destination", result.Destination)
	printer.Println()
	return printer.Success(map[string]any{"message": result.Export.String()})
}
