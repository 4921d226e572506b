package journal

import (
	"errors"
	"fmt"

	"github.com/gorewood/moodmark/internal/temporal"
)

// NoMoodError is returned when an entry is built without a mood.
type NoMoodError struct {
	Value string
}

// Error implements the error interface.
func (e *NoMoodError) Error() string {
	return fmt.Sprintf("entry requires a non-empty mood, got %q", e.Value)
}

// IncompleteRowError is returned when a row lacks one of the fields every entry needs.
type IncompleteRowError struct {
	Key   string
	Empty bool
}

// Error implements the error interface.
func (e *IncompleteRowError) Error() string {
	if e.Empty {
		return fmt.Sprintf("row has an empty %q field", e.Key)
	}
	return fmt.Sprintf("row has no %q field", e.Key)
}

// EntryMissingError is returned when a day has no entry at a valid time.
type EntryMissingError struct {
	Date temporal.Date
	Time temporal.Time
}

// Error implements the error interface.
func (e *EntryMissingError) Error() string {
	return fmt.Sprintf("no entry written at %s on %s", e.Time, e.Date)
}

// DayMissingError is returned when the journal has no day for a valid date.
type DayMissingError struct {
	Date temporal.Date
}

// Error implements the error interface.
func (e *DayMissingError) Error() string {
	return fmt.Sprintf("no entries written on %s", e.Date)
}

// ErrNoStream is wrapped by StreamError when output is requested without a writer.
var ErrNoStream = errors.New("no writable stream")

// StreamError is returned when rendered output cannot be written.
type StreamError struct {
	Err error
}

// Error implements the error interface.
func (e *StreamError) Error() string {
	return "stream not writable: " + e.Err.Error()
}

// Unwrap returns the underlying write error.
func (e *StreamError) Unwrap() error {
	return e.Err
}
