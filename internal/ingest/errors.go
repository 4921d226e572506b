package ingest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyJournal is returned when a journal was read but produced no entries.
var ErrEmptyJournal = errors.New("journal has no usable entries")

// TooFewCellsError is returned for a row that lacks cells for some columns.
type TooFewCellsError struct {
	Line    int
	Missing []string
}

// Error implements the error interface.
func (e *TooFewCellsError) Error() string {
	return fmt.Sprintf("line %d: row is missing cells for %s", e.Line, strings.Join(e.Missing, ", "))
}

// TooManyCellsError is returned for a row with more cells than the header has columns.
type TooManyCellsError struct {
	Line  int
	Extra []string
}

// Error implements the error interface.
func (e *TooManyCellsError) Error() string {
	return fmt.Sprintf("line %d: row has %d unexpected trailing cells", e.Line, len(e.Extra))
}

// MalformedRowError is returned by a RowSource for a record it could not parse.
// Only that record is lost.
type MalformedRowError struct {
	Line int
	Err  error
}

// Error implements the error interface.
func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("line %d: malformed record: %v", e.Line, e.Err)
}

// Unwrap returns the parse error.
func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

// HeaderError is returned when the CSV header lacks expected columns.
type HeaderError struct {
	Missing []string
}

// Error implements the error interface.
func (e *HeaderError) Error() string {
	return "header is missing columns: " + strings.Join(e.Missing, ", ")
}

// JournalUnreadableError is returned when the journal file cannot be opened or decoded.
type JournalUnreadableError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *JournalUnreadableError) Error() string {
	if e.Path == "" {
		return "journal is unreadable: " + e.Err.Error()
	}
	return fmt.Sprintf("journal %s is unreadable: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *JournalUnreadableError) Unwrap() error {
	return e.Err
}
