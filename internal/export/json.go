package export

import (
	"github.com/gorewood/moodmark/internal/journal"
	"github.com/gorewood/moodmark/internal/output"
)

// EntryView is the JSON form of an entry.
type EntryView struct {
	Time       string   `json:"time"`
	Mood       string   `json:"mood"`
	Group      string   `json:"group,omitempty"`
	Activities []string `json:"activities,omitempty"`
	Title      string   `json:"title,omitempty"`
	Note       string   `json:"note,omitempty"`
}

// DayView is the JSON form of a day.
type DayView struct {
	Date     string      `json:"date"`
	Path     string      `json:"path"`
	Count    int         `json:"entries"`
	Tags     []string    `json:"tags,omitempty"`
	Moods    []string    `json:"moods"`
	Entries  []EntryView `json:"entry_list,omitempty"`
	Markdown string      `json:"markdown,omitempty"`
}

// ViewEntry returns the JSON form of entry.
func ViewEntry(entry *journal.Entry) EntryView {
	return EntryView{
		Time:       entry.Time().String(),
		Mood:       entry.Mood(),
		Group:      entry.Group(),
		Activities: entry.Activities(),
		Title:      entry.Title(),
		Note:       entry.Note(),
	}
}

// ViewDay returns the JSON form of day. Path is relative to the vault when
// destination is empty. With detail set, entries and rendered Markdown are included.
func ViewDay(day *journal.Day, destination string, detail bool) (DayView, error) {
	view := DayView{
		Date:  day.String(),
		Path:  NotePath(destination, day.Date()),
		Count: day.Len(),
		Tags:  day.Tags(),
		Moods: []string{},
	}
	for _, entry := range day.Entries() {
		view.Moods = append(view.Moods, entry.Mood())
		if detail {
			view.Entries = append(view.Entries, ViewEntry(entry))
		}
	}
	if detail {
		content, err := day.Render()
		if err != nil {
			return DayView{}, err
		}
		view.Markdown = string(content)
	}
	return view, nil
}

// Views returns the JSON form of every non-empty day, in the given order.
func Views(days []*journal.Day, destination string, detail bool) ([]DayView, error) {
	views := make([]DayView, 0, len(days))
	for _, day := range days {
		if day.IsEmpty() {
			continue
		}
		view, err := ViewDay(day, destination, detail)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// FormatJSON outputs the day views as a JSON array to the printer.
func FormatJSON(printer *output.Printer, views []DayView) error {
	return printer.WriteJSON(views)
}
