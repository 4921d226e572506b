// Package journal models a mood journal as days of time-keyed entries and
// renders each day as a Markdown note.
package journal

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gorewood/moodmark/internal/mood"
	"github.com/gorewood/moodmark/internal/temporal"
)

// Config controls how days and their entries are built and rendered.
type Config struct {
	Entry EntryConfig
	// FrontMatterTags are written into each note's front-matter.
	FrontMatterTags []string
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Entry:           DefaultEntryConfig(),
		FrontMatterTags: []string{"daylio"},
	}
}

// Journal owns every Day of one conversion run. Asking for the same date twice
// returns the same *Day, so rows of one date accumulate in one place.
// A Journal is not safe for concurrent use.
type Journal struct {
	tags    []string
	builder *EntryBuilder
	days    map[temporal.Date]*Day
}

// New creates an empty journal. A nil registry means the standard mood set.
func New(config Config, moods *mood.Registry) *Journal {
	return &Journal{
		tags:    slices.Clone(config.FrontMatterTags),
		builder: NewEntryBuilder(config.Entry, moods),
		days:    make(map[temporal.Date]*Day),
	}
}

// Moods returns the registry entries are classified with.
func (j *Journal) Moods() *mood.Registry {
	return j.builder.Moods()
}

// Builder returns the entry builder shared by every day.
func (j *Journal) Builder() *EntryBuilder {
	return j.builder
}

// Day returns the Day for date, creating an empty one on first use.
// date is anything temporal.CoerceDate accepts.
func (j *Journal) Day(date any) (*Day, error) {
	key, err := temporal.CoerceDate(date)
	if err != nil {
		return nil, err
	}
	if day, ok := j.days[key]; ok {
		return day, nil
	}
	day := newDay(key, j.tags, j.builder)
	j.days[key] = day
	return day, nil
}

// Lookup returns the existing Day for date or *DayMissingError.
func (j *Journal) Lookup(date any) (*Day, error) {
	key, err := temporal.CoerceDate(date)
	if err != nil {
		return nil, err
	}
	day, ok := j.days[key]
	if !ok {
		return nil, &DayMissingError{Date: key}
	}
	return day, nil
}

// Days returns every day in ascending date order, including empty ones.
func (j *Journal) Days() []*Day {
	dates := slices.SortedFunc(maps.Keys(j.days), temporal.Date.Compare)
	days := make([]*Day, 0, len(dates))
	for _, date := range dates {
		days = append(days, j.days[date])
	}
	return days
}

// Len returns the number of days, including empty ones.
func (j *Journal) Len() int {
	return len(j.days)
}

// EntryCount returns the number of entries across all days.
func (j *Journal) EntryCount() int {
	total := 0
	for _, day := range j.days {
		total += day.Len()
	}
	return total
}

// String summarises the journal for logs.
func (j *Journal) String() string {
	dates := make([]string, 0, len(j.days))
	for _, day := range j.Days() {
		dates = append(dates, day.String())
	}
	return fmt.Sprintf("Journal(days=%d, entries=%d, dates=[%s])", j.Len(), j.EntryCount(), strings.Join(dates, ", "))
}
