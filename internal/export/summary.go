package export

import (
	"fmt"

	"github.com/gorewood/moodmark/internal/config"
)

// Outcome is what happened to one note.
type Outcome string

// Outcomes of a note.
const (
	Created          Outcome = "created"
	Overwritten      Outcome = "overwritten"
	SkippedUnchanged Outcome = "unchanged"
	SkippedConflict  Outcome = "kept"
	Failed           Outcome = "failed"
)

// FileResult records the outcome for one day.
type FileResult struct {
	Date    string  `json:"date"`
	Path    string  `json:"path"`
	Outcome Outcome `json:"outcome"`
	Bytes   int     `json:"bytes,omitempty"`
	Error   string  `json:"error,omitempty"`
}

// Summary counts the outcomes of an OutputAll run.
type Summary struct {
	Created          int          `json:"created"`
	Overwritten      int          `json:"overwritten"`
	SkippedUnchanged int          `json:"skipped_unchanged"`
	SkippedConflict  int          `json:"skipped_conflict"`
	Failed           int          `json:"failed"`
	Force            string       `json:"force"`
	Files            []FileResult `json:"files,omitempty"`
}

func (s *Summary) record(result FileResult) {
	switch result.Outcome {
	case Created:
		s.Created++
	case Overwritten:
		s.Overwritten++
	case SkippedUnchanged:
		s.SkippedUnchanged++
	case SkippedConflict:
		s.SkippedConflict++
	case Failed:
		s.Failed++
	}
	s.Files = append(s.Files, result)
}

// Written returns the number of notes created or overwritten.
func (s Summary) Written() int {
	return s.Created + s.Overwritten
}

// Skipped returns the number of notes left as they were, for any reason.
func (s Summary) Skipped() int {
	return s.SkippedUnchanged + s.SkippedConflict + s.Failed
}

// String returns a one-line report, e.g. "2 created, 1 overwritten, 3 skipped (3 unchanged)".
func (s Summary) String() string {
	line := fmt.Sprintf("%d created, %d overwritten, %d skipped", s.Created, s.Overwritten, s.Skipped())
	if s.Skipped() > 0 {
		line += fmt.Sprintf(" (%d unchanged, %d kept, %d failed)", s.SkippedUnchanged, s.SkippedConflict, s.Failed)
	}
	if s.Force != config.ForceUnset.String() && s.Force != "" {
		line += "; changed notes " + forceVerb(s.Force)
	}
	return line
}

func forceVerb(force string) string {
	if force == string(config.ForceAccept) {
		return "overwritten without asking"
	}
	return "kept without asking"
}
