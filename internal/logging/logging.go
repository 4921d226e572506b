// Package logging builds the zerolog logger every moodmark run writes its
// progress and row diagnostics to.
package logging

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options selects the verbosity and rendering of the logger.
type Options struct {
	Verbose bool
	Quiet   bool
	// Color enables ANSI colours in console output.
	Color bool
	// JSON writes one JSON object per line instead of console text.
	JSON bool
}

// Level returns the minimum level for opts: debug when verbose, error when
// quiet, info otherwise.
func (o Options) Level() zerolog.Level {
	switch {
	case o.Verbose:
		return zerolog.DebugLevel
	case o.Quiet:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New creates a logger writing to w, tagged with a short run id.
func New(w io.Writer, opts Options) zerolog.Logger {
	if !opts.JSON {
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    !opts.Color,
			TimeFormat: time.TimeOnly,
		}
	}
	return zerolog.New(w).
		Level(opts.Level()).
		With().
		Timestamp().
		Str("run", RunID()).
		Logger()
}

// RunID returns a short random identifier for correlating one run's log lines.
func RunID() string {
	return uuid.NewString()[:8]
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
