package config

import (
	"fmt"
	"strings"
)

// ForceMode decides what happens to an existing note whose content changed.
type ForceMode string

const (
	// ForceUnset asks the operator for each conflicting file.
	ForceUnset ForceMode = ""
	// ForceAccept overwrites every conflicting file.
	ForceAccept ForceMode = "accept"
	// ForceReject keeps every conflicting file.
	ForceReject ForceMode = "reject"
)

// ParseForceMode parses a --force value. "refuse" is read as reject.
func ParseForceMode(value string) (ForceMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return ForceUnset, nil
	case "accept":
		return ForceAccept, nil
	case "reject", "refuse":
		return ForceReject, nil
	default:
		return ForceUnset, fmt.Errorf("invalid force mode %q: use accept or reject", value)
	}
}

// IsSet reports whether a uniform policy applies.
func (m ForceMode) IsSet() bool {
	return m != ForceUnset
}

// String returns the mode, or "ask" when unset.
func (m ForceMode) String() string {
	if m == ForceUnset {
		return "ask"
	}
	return string(m)
}
