package journal

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gorewood/moodmark/internal/mood"
	"github.com/gorewood/moodmark/internal/temporal"
)

// EntryConfig controls how entries are parsed and rendered.
type EntryConfig struct {
	// Delimiter separates activities in the activities cell.
	Delimiter string
	// HeaderLevel is the number of '#' in each entry heading.
	HeaderLevel int
	// TagActivities renders activities as #tags.
	TagActivities bool
	// Prefix and Suffix are added around each entry header.
	Prefix string
	Suffix string
	// Colour prepends a coloured marker for the mood group.
	Colour bool
}

// DefaultEntryConfig returns the configuration used when none is given.
func DefaultEntryConfig() EntryConfig {
	return EntryConfig{
		Delimiter:     "|",
		HeaderLevel:   2,
		TagActivities: true,
	}
}

// EntryInput is the raw material for one entry.
type EntryInput struct {
	// Time is anything temporal.CoerceTime accepts.
	Time       any
	Mood       string
	Activities string
	Title      string
	Note       string
}

// Entry is a single journal entry written at a moment of a day. Entries are immutable.
type Entry struct {
	time       temporal.Time
	mood       string
	group      string
	activities []string
	title      string
	note       string
	config     EntryConfig
}

// EntryBuilder creates entries sharing one configuration and mood registry.
type EntryBuilder struct {
	config EntryConfig
	moods  *mood.Registry
}

// NewEntryBuilder creates a builder. A nil registry means the standard mood set.
func NewEntryBuilder(config EntryConfig, moods *mood.Registry) *EntryBuilder {
	if moods == nil {
		moods = mood.New(nil)
	}
	if config.Delimiter == "" {
		config.Delimiter = DefaultEntryConfig().Delimiter
	}
	if config.HeaderLevel < 1 {
		config.HeaderLevel = DefaultEntryConfig().HeaderLevel
	}
	return &EntryBuilder{config: config, moods: moods}
}

// Config returns the builder's entry configuration.
func (b *EntryBuilder) Config() EntryConfig {
	return b.config
}

// Moods returns the registry used to classify moods.
func (b *EntryBuilder) Moods() *mood.Registry {
	return b.moods
}

// Build validates input and creates an Entry.
// An invalid time returns *temporal.InvalidTimeError and an empty mood returns *NoMoodError.
// Unknown moods, suspicious tags and empty activity lists are reported as diagnostics.
func (b *EntryBuilder) Build(input EntryInput) (*Entry, Diagnostics, error) {
	at, err := temporal.CoerceTime(input.Time)
	if err != nil {
		return nil, nil, err
	}

	moodName := strings.TrimSpace(input.Mood)
	if moodName == "" {
		return nil, nil, &NoMoodError{Value: input.Mood}
	}

	var diags Diagnostics
	group, err := b.moods.Group(moodName)
	if err != nil {
		diags = append(diags, Warning{
			Kind:    UnknownMood,
			Subject: moodName,
			Message: fmt.Sprintf("mood %q is not in the known mood set; it will not be coloured", moodName),
		})
	}

	activities, activityDiags := b.activities(input.Activities)
	diags = append(diags, activityDiags...)

	return &Entry{
		time:       at,
		mood:       moodName,
		group:      group,
		activities: activities,
		title:      UnwrapQuotes(input.Title),
		note:       UnwrapQuotes(input.Note),
		config:     b.config,
	}, diags, nil
}

func (b *EntryBuilder) activities(cell string) ([]string, Diagnostics) {
	if strings.TrimSpace(cell) == "" {
		return nil, nil
	}

	var (
		slugs []string
		diags Diagnostics
	)
	for _, piece := range SplitActivities(cell, b.config.Delimiter) {
		slug := Slugify(piece, false)
		if slug == "" {
			continue
		}
		if !b.config.TagActivities {
			slugs = append(slugs, slug)
			continue
		}
		if !validTag(slug) {
			diags = append(diags, Warning{
				Kind:    InvalidTag,
				Subject: slug,
				Message: fmt.Sprintf("activity tag #%s starts with a digit and is not a valid tag", slug),
			})
		}
		slugs = append(slugs, "#"+slug)
	}

	if len(slugs) == 0 {
		diags = append(diags, Warning{
			Kind:    EmptyActivities,
			Subject: cell,
			Message: fmt.Sprintf("activities %q produced no usable activity", cell),
		})
	}
	return slugs, diags
}

// Time returns the time the entry was written at; it is the entry's identity within a day.
func (e *Entry) Time() temporal.Time { return e.time }

// Mood returns the mood as written.
func (e *Entry) Mood() string { return e.mood }

// Group returns the mood group, or "" when the mood is unknown.
func (e *Entry) Group() string { return e.group }

// Activities returns a copy of the slugified activities.
func (e *Entry) Activities() []string { return slices.Clone(e.activities) }

// Title returns the note title, or "" when absent.
func (e *Entry) Title() string { return e.title }

// Note returns the note body, or "" when absent.
func (e *Entry) Note() string { return e.note }

// String returns the entry time as HH:MM.
func (e *Entry) String() string { return e.time.String() }

// Header returns the heading line, e.g. "## good | 10:00 | Title".
func (e *Entry) Header() string {
	heading := strings.Repeat("#", e.config.HeaderLevel) + " "
	if e.config.Colour {
		if marker := mood.Marker(e.group); marker != "" {
			heading += marker + " "
		}
	}
	heading += e.mood

	var header strings.Builder
	if e.config.Prefix != "" {
		header.WriteString(e.config.Prefix + " ")
	}
	header.WriteString(heading)
	header.WriteString(" | " + e.time.String())
	if e.title != "" {
		header.WriteString(" | " + e.title)
	}
	if e.config.Suffix != "" {
		header.WriteString(" " + e.config.Suffix)
	}
	return header.String()
}

// Output writes the entry to w and returns the number of bytes written.
// The entry is rendered in memory first and written with a single call.
func (e *Entry) Output(w io.Writer) (int, error) {
	if w == nil {
		return 0, &StreamError{Err: ErrNoStream}
	}

	var body strings.Builder
	body.WriteString(e.Header())
	if len(e.activities) > 0 {
		body.WriteString("\n" + strings.Join(e.activities, " "))
	}
	if e.note != "" {
		body.WriteString("\n" + e.note)
	}

	n, err := io.WriteString(w, body.String())
	if err != nil {
		return n, &StreamError{Err: err}
	}
	return n, nil
}
