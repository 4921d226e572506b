package journal

// Column names of a Daylio CSV export.
const (
	ColFullDate   = "full_date"
	ColDate       = "date"
	ColWeekday    = "weekday"
	ColTime       = "time"
	ColMood       = "mood"
	ColActivities = "activities"
	ColNoteTitle  = "note_title"
	ColNote       = "note"
)

// Columns lists every column a journal row is expected to carry, in export order.
var Columns = []string{
	ColFullDate,
	ColDate,
	ColWeekday,
	ColTime,
	ColMood,
	ColActivities,
	ColNoteTitle,
	ColNote,
}

// Row is one CSV record keyed by column name.
type Row map[string]string

// required returns the value of key, or an IncompleteRowError when it is absent or blank.
func (r Row) required(key string) (string, error) {
	value, ok := r[key]
	if !ok {
		return "", &IncompleteRowError{Key: key}
	}
	if value == "" {
		return "", &IncompleteRowError{Key: key, Empty: true}
	}
	return value, nil
}
