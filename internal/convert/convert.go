// Package convert runs a whole conversion: load the mood taxonomy, ingest the
// CSV export into a journal and write its days into the vault. The CLI and the
// MCP server both go through a Converter.
package convert

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gorewood/moodmark/internal/config"
	"github.com/gorewood/moodmark/internal/export"
	"github.com/gorewood/moodmark/internal/ingest"
	"github.com/gorewood/moodmark/internal/journal"
	"github.com/gorewood/moodmark/internal/mood"
)

// Result reports a completed conversion.
type Result struct {
	Journal     string         `json:"journal"`
	Destination string         `json:"destination"`
	Days        int            `json:"days"`
	Entries     int            `json:"entries"`
	CustomMoods int            `json:"custom_moods"`
	Ingest      ingest.Stats   `json:"ingest"`
	Export      export.Summary `json:"export"`
}

// Converter holds the options and mood taxonomy of one run.
type Converter struct {
	opts   config.Options
	moods  *mood.Registry
	logger zerolog.Logger
}

// New creates a Converter. A mood file that cannot be loaded is logged and the
// standard mood set is used instead.
func New(opts config.Options, logger zerolog.Logger) *Converter {
	return &Converter{
		opts:   opts,
		moods:  LoadMoods(opts.Moods, logger),
		logger: logger,
	}
}

// LoadMoods loads the taxonomy at path, falling back to the standard set.
func LoadMoods(path string, logger zerolog.Logger) *mood.Registry {
	moods, err := mood.Load(path)
	if err != nil {
		logger.Warn().Err(err).Msg("standard mood set will be used")
		return moods
	}
	if path != "" {
		logger.Debug().
			Str("path", path).
			Int("custom", len(moods.CustomMoods())).
			Msg("mood taxonomy loaded")
	}
	return moods
}

// Options returns the run's options.
func (c *Converter) Options() config.Options {
	return c.opts
}

// Moods returns the mood taxonomy entries are classified with.
func (c *Converter) Moods() *mood.Registry {
	return c.moods
}

// Read ingests the CSV export at path into a new journal.
// It fails with *ingest.JournalUnreadableError or ingest.ErrEmptyJournal.
func (c *Converter) Read(path string) (*journal.Journal, ingest.Stats, error) {
	src, err := ingest.Open(path)
	if err != nil {
		return nil, ingest.Stats{}, err
	}
	defer src.Close() //nolint:errcheck // read-only file

	j := journal.New(c.opts.Journal(), c.moods)
	pipeline := ingest.NewPipeline(j, c.logger.With().Str("journal", path).Logger())
	stats, err := pipeline.Run(src)
	if err != nil {
		var unreadable *ingest.JournalUnreadableError
		if errors.As(err, &unreadable) && unreadable.Path == "" {
			unreadable.Path = path
		}
		return nil, stats, err
	}

	c.logger.Info().
		Str("journal", path).
		Int("rows", stats.Attempted).
		Int("entries", stats.Succeeded).
		Int("days", countDays(j)).
		Msg("journal read")
	return j, stats, nil
}

// Convert reads the journal at journalPath and writes its notes under
// destination. decider resolves changed notes when no force mode is set.
// On ErrAborted the partial result is returned with the error.
func (c *Converter) Convert(ctx context.Context, journalPath, destination string, decider export.Decider) (Result, error) {
	result := Result{Journal: journalPath, Destination: destination, CustomMoods: len(c.moods.CustomMoods())}

	dest, err := ingest.ExpandPath(destination)
	if err != nil {
		return result, fmt.Errorf("expanding destination %s: %w", destination, err)
	}
	result.Destination = dest

	j, stats, err := c.Read(journalPath)
	result.Ingest = stats
	if err != nil {
		return result, err
	}
	result.Days, result.Entries = countDays(j), j.EntryCount()

	manager := export.NewManager(dest, c.opts.Force, decider, c.logger)
	summary, err := manager.OutputAll(ctx, j.Days())
	result.Export = summary
	return result, err
}

// countDays returns the number of days that have at least one entry. A row
// that fails after its date was read leaves an empty day behind.
func countDays(j *journal.Journal) int {
	n := 0
	for _, day := range j.Days() {
		if !day.IsEmpty() {
			n++
		}
	}
	return n
}
