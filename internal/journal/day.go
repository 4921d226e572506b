package journal

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/gorewood/moodmark/internal/temporal"
)

// Day groups the entries written on one calendar date.
// Days are obtained from a Journal so that each date maps to a single Day.
type Day struct {
	date    temporal.Date
	tags    []string
	builder *EntryBuilder
	entries map[temporal.Time]*Entry
}

func newDay(date temporal.Date, tags []string, builder *EntryBuilder) *Day {
	return &Day{
		date:    date,
		tags:    tags,
		builder: builder,
		entries: make(map[temporal.Time]*Entry),
	}
}

// Date returns the day's identity.
func (d *Day) Date() temporal.Date { return d.date }

// String returns the date as YYYY-MM-DD.
func (d *Day) String() string { return d.date.String() }

// Len returns the number of entries.
func (d *Day) Len() int { return len(d.entries) }

// IsEmpty reports whether the day has no entries and therefore no file to write.
func (d *Day) IsEmpty() bool { return len(d.entries) == 0 }

// Add stores entries keyed by their time. An entry at an already used time
// replaces the earlier one. It returns how many entries were replaced.
func (d *Day) Add(entries ...*Entry) int {
	replaced := 0
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		if _, ok := d.entries[entry.Time()]; ok {
			replaced++
		}
		d.entries[entry.Time()] = entry
	}
	return replaced
}

// CreateEntryFromRow builds an entry from row and adds it to the day.
// The row must carry non-empty time and mood fields; the date fields are ignored
// because the caller picked this day from them.
func (d *Day) CreateEntryFromRow(row Row) (Diagnostics, error) {
	at, err := row.required(ColTime)
	if err != nil {
		return nil, err
	}
	moodName, err := row.required(ColMood)
	if err != nil {
		return nil, err
	}

	entry, diags, err := d.builder.Build(EntryInput{
		Time:       at,
		Mood:       moodName,
		Activities: row[ColActivities],
		Title:      row[ColNoteTitle],
		Note:       row[ColNote],
	})
	if err != nil {
		return nil, err
	}

	if d.Add(entry) > 0 {
		diags = append(diags, Warning{
			Kind:    DuplicateTime,
			Subject: entry.Time().String(),
			Message: fmt.Sprintf("entry at %s on %s replaced an earlier entry at the same time", entry.Time(), d.date),
		})
	}
	return diags, nil
}

// Entry returns the entry written at t. An unparsable t returns the temporal
// error; a valid time without an entry returns *EntryMissingError.
func (d *Day) Entry(t any) (*Entry, error) {
	at, err := temporal.CoerceTime(t)
	if err != nil {
		return nil, err
	}
	entry, ok := d.entries[at]
	if !ok {
		return nil, &EntryMissingError{Date: d.date, Time: at}
	}
	return entry, nil
}

// Entries returns the entries in ascending time order.
func (d *Day) Entries() []*Entry {
	times := slices.SortedFunc(maps.Keys(d.entries), temporal.Time.Compare)
	entries := make([]*Entry, 0, len(times))
	for _, at := range times {
		entries = append(entries, d.entries[at])
	}
	return entries
}

// Tags returns the front-matter tags: deduplicated, without blanks, sorted.
func (d *Day) Tags() []string {
	seen := make(map[string]bool, len(d.tags))
	var tags []string
	for _, tag := range d.tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Output writes the day's Markdown to w and returns the number of bytes written.
// The front-matter block is omitted when there are no tags. Entries follow in
// ascending time order, each followed by a blank line.
func (d *Day) Output(w io.Writer) (int, error) {
	if w == nil {
		return 0, &StreamError{Err: ErrNoStream}
	}

	var buf bytes.Buffer
	if tags := d.Tags(); len(tags) > 0 {
		buf.WriteString("---\n")
		buf.WriteString("tags: " + strings.Join(tags, ",") + "\n")
		buf.WriteString("---\n\n")
	}
	for _, entry := range d.Entries() {
		n, err := entry.Output(&buf)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			buf.WriteString("\n\n")
		}
	}

	n, err := w.Write(buf.Bytes())
	if err != nil {
		return n, &StreamError{Err: err}
	}
	return n, nil
}

// Render returns the day's Markdown.
func (d *Day) Render() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
