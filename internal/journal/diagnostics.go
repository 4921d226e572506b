package journal

import "strings"

// WarningKind classifies a non-fatal problem found while building an entry.
type WarningKind int

const (
	// UnknownMood means the mood is not in the registry; colour markers are skipped.
	UnknownMood WarningKind = iota + 1
	// InvalidTag means an activity tag starts with a digit, which vaults do not accept as a tag.
	InvalidTag
	// EmptyActivities means a non-empty activities cell produced no activities.
	EmptyActivities
	// DuplicateTime means an entry replaced an earlier one at the same time.
	DuplicateTime
)

// String returns a short name for the kind.
func (k WarningKind) String() string {
	switch k {
	case UnknownMood:
		return "unknown-mood"
	case InvalidTag:
		return "invalid-tag"
	case EmptyActivities:
		return "empty-activities"
	case DuplicateTime:
		return "duplicate-time"
	default:
		return "unknown"
	}
}

// Warning is a single non-fatal diagnostic.
type Warning struct {
	Kind    WarningKind
	Subject string
	Message string
}

// String implements fmt.Stringer.
func (w Warning) String() string {
	return w.Kind.String() + ": " + w.Message
}

// Diagnostics collects the warnings raised alongside a successful result.
type Diagnostics []Warning

// Has reports whether any warning of kind was raised.
func (d Diagnostics) Has(kind WarningKind) bool {
	for _, w := range d {
		if w.Kind == kind {
			return true
		}
	}
	return false
}

// String joins all warnings with "; ".
func (d Diagnostics) String() string {
	parts := make([]string, 0, len(d))
	for _, w := range d {
		parts = append(parts, w.String())
	}
	return strings.Join(parts, "; ")
}
