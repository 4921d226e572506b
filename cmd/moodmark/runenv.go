package main

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gorewood/moodmark/internal/config"
	"github.com/gorewood/moodmark/internal/convert"
	"github.com/gorewood/moodmark/internal/export"
	"github.com/gorewood/moodmark/internal/ingest"
	"github.com/gorewood/moodmark/internal/journal"
	"github.com/gorewood/moodmark/internal/logging"
	"github.com/gorewood/moodmark/internal/output"
	"github.com/gorewood/moodmark/internal/temporal"
)

// runEnv is what every command resolves before doing its work.
type runEnv struct {
	opts    config.Options
	printer *output.Printer
	logger  zerolog.Logger
}

// newRunEnv loads options for cmd and builds its printer and logger.
// A configuration error has already been reported when it is returned.
func newRunEnv(cmd *cobra.Command) (*runEnv, error) {
	jsonMode := isJSONMode(cmd)

	opts, err := config.Load(cmd.Flags())
	if err != nil {
		printer := newPrinter(cmd, jsonMode, "auto")
		exitErr := output.NewUserErrorWithCause("invalid configuration: "+err.Error(), err)
		printer.Error(exitErr)
		return nil, exitErr
	}

	logger := logging.New(cmd.ErrOrStderr(), logging.Options{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
		Color:   output.ResolveColorMode(opts.ColorOutput, output.IsTTY(cmd.ErrOrStderr())),
		JSON:    jsonMode,
	})
	if opts.File != "" {
		logger.Debug().Str("file", opts.File).Msg("config loaded")
	}

	return &runEnv{
		opts:    opts,
		printer: newPrinter(cmd, jsonMode, opts.ColorOutput),
		logger:  logger,
	}, nil
}

func newPrinter(cmd *cobra.Command, jsonMode bool, colorMode string) *output.Printer {
	isTTY := output.ResolveColorMode(colorMode, output.IsTTY(cmd.OutOrStdout()))
	return output.NewPrinter(cmd.OutOrStdout(), jsonMode, isTTY).WithStderr(cmd.ErrOrStderr())
}

// converter creates the Converter for this run.
func (e *runEnv) converter() *convert.Converter {
	return convert.New(e.opts, e.logger)
}

// fail reports err and returns it as an *output.ExitError.
func (e *runEnv) fail(err error) error {
	exitErr := toExitError(err)
	e.printer.Error(exitErr)
	return exitErr
}

// toExitError maps a conversion error to the exit code it deserves:
// 130 for an interrupt, 1 for problems with the input, 2 otherwise.
func toExitError(err error) *output.ExitError {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	if errors.Is(err, export.ErrAborted) {
		return output.NewAbortedError(err)
	}
	if isInputError(err) {
		return output.NewUserErrorWithCause(err.Error(), err)
	}
	return output.NewSystemErrorWithCause(err.Error(), err)
}

func isInputError(err error) bool {
	var (
		unreadable  *ingest.JournalUnreadableError
		header      *ingest.HeaderError
		dayMissing  *journal.DayMissingError
		invalidDate *temporal.InvalidDateError
	)
	return errors.Is(err, ingest.ErrEmptyJournal) ||
		errors.As(err, &unreadable) ||
		errors.As(err, &header) ||
		errors.As(err, &dayMissing) ||
		errors.As(err, &invalidDate)
}
