package ingest

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/gorewood/moodmark/internal/journal"
)

// Stats counts the outcome of a Run.
type Stats struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Warnings  int `json:"warnings"`
}

// Pipeline feeds rows into a journal. It is not safe for concurrent use.
type Pipeline struct {
	journal *journal.Journal
	logger  zerolog.Logger
}

// NewPipeline creates a pipeline adding entries to j.
func NewPipeline(j *journal.Journal, logger zerolog.Logger) *Pipeline {
	return &Pipeline{journal: j, logger: logger}
}

// Journal returns the journal rows are added to.
func (p *Pipeline) Journal() *journal.Journal {
	return p.journal
}

// ProcessRow checks row's shape and adds its entry to the Day named by its
// full_date cell. Every returned error concerns this row only.
func (p *Pipeline) ProcessRow(row Row) (journal.Diagnostics, error) {
	if err := checkShape(row); err != nil {
		return nil, err
	}

	date := row.Values[journal.ColFullDate]
	if date == "" {
		return nil, &journal.IncompleteRowError{Key: journal.ColFullDate, Empty: true}
	}
	day, err := p.journal.Day(date)
	if err != nil {
		return nil, err
	}
	return day.CreateEntryFromRow(row.Values)
}

func checkShape(row Row) error {
	var missing []string
	for _, column := range journal.Columns {
		if _, ok := row.Values[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return &TooFewCellsError{Line: row.Line, Missing: missing}
	}
	if len(row.Extra) > 0 {
		return &TooManyCellsError{Line: row.Line, Extra: row.Extra}
	}
	return nil
}

// Run processes every row of src. Bad rows, including records the source
// could not parse, are logged and skipped.
// A source failure stops the run with *JournalUnreadableError; a run in which
// no row succeeded returns ErrEmptyJournal.
func (p *Pipeline) Run(src RowSource) (Stats, error) {
	var stats Stats
	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		var malformed *MalformedRowError
		if errors.As(err, &malformed) {
			stats.Attempted++
			stats.Failed++
			p.logger.Warn().Err(malformed.Err).Int("line", malformed.Line).Msg("skipping row")
			continue
		}
		if err != nil {
			var unreadable *JournalUnreadableError
			if errors.As(err, &unreadable) {
				return stats, err
			}
			return stats, &JournalUnreadableError{Err: err}
		}

		stats.Attempted++
		diags, err := p.ProcessRow(row)
		if err != nil {
			stats.Failed++
			p.logger.Warn().Err(err).Int("line", row.Line).Msg("skipping row")
			continue
		}
		stats.Succeeded++
		stats.Warnings += len(diags)
		p.logDiagnostics(row, diags)
	}

	p.logger.Debug().
		Int("attempted", stats.Attempted).
		Int("succeeded", stats.Succeeded).
		Int("days", p.journal.Len()).
		Msg("journal ingested")

	if stats.Succeeded == 0 {
		return stats, fmt.Errorf("%w (%d rows read)", ErrEmptyJournal, stats.Attempted)
	}
	return stats, nil
}

func (p *Pipeline) logDiagnostics(row Row, diags journal.Diagnostics) {
	for _, warning := range diags {
		event := p.logger.Warn()
		if warning.Kind == journal.DuplicateTime {
			event = p.logger.Info()
		}
		event.
			Int("line", row.Line).
			Str("kind", warning.Kind.String()).
			Str("subject", warning.Subject).
			Msg(warning.Message)
	}
}
