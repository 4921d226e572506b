// Package mood classifies free-text moods into the five Daylio mood groups.
package mood

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// The five canonical mood groups, best to worst.
const (
	Rad     = "rad"
	Good    = "good"
	Neutral = "neutral"
	Bad     = "bad"
	Awful   = "awful"
)

// Groups lists the canonical groups in merge order.
var Groups = []string{Rad, Good, Neutral, Bad, Awful}

// Taxonomy is a decoded custom mood document: group name to a list of moods.
// Values are untyped because the document comes straight from JSON or YAML.
type Taxonomy map[string][]any

// NotFoundError is returned when a mood is unknown to a Registry.
type NotFoundError struct {
	Mood string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("mood %q is not in the known mood set", e.Mood)
}

// Registry maps every known mood to its group. It is immutable once built.
type Registry struct {
	known  map[string]string
	custom map[string]string
}

// New builds a Registry seeded with the canonical groups and extended with doc.
// Unknown groups, non-string moods, empty moods and moods that are already known
// are ignored. A nil or empty doc yields the standard registry.
func New(doc Taxonomy) *Registry {
	r := &Registry{
		known:  make(map[string]string, len(Groups)),
		custom: make(map[string]string),
	}
	for _, group := range Groups {
		r.known[group] = group
	}

	for _, group := range Groups {
		moods, ok := doc[group]
		if !ok {
			continue
		}
		for _, raw := range moods {
			name, ok := raw.(string)
			if !ok || name == "" {
				continue
			}
			if _, taken := r.known[name]; taken {
				continue
			}
			r.known[name] = group
			r.custom[name] = group
		}
	}

	return r
}

// Group returns the group mood belongs to.
func (r *Registry) Group(mood string) (string, error) {
	group, ok := r.known[mood]
	if !ok {
		return "", &NotFoundError{Mood: mood}
	}
	return group, nil
}

// Knows reports whether mood is registered.
func (r *Registry) Knows(mood string) bool {
	_, ok := r.known[mood]
	return ok
}

// Moods returns a copy of every known mood and its group.
func (r *Registry) Moods() map[string]string {
	return maps.Clone(r.known)
}

// CustomMoods returns a copy of the moods added on top of the canonical groups.
func (r *Registry) CustomMoods() map[string]string {
	return maps.Clone(r.custom)
}

// IsStandard reports whether no custom mood took effect.
func (r *Registry) IsStandard() bool {
	return len(r.custom) == 0
}

// Equal reports whether both registries map the same moods to the same groups.
func (r *Registry) Equal(other *Registry) bool {
	if r == nil || other == nil {
		return r == other
	}
	return maps.Equal(r.known, other.known)
}

// InGroup returns the moods of group in sorted order, the group name first.
func (r *Registry) InGroup(group string) []string {
	var moods []string
	for name, g := range r.known {
		if g == group && name != group {
			moods = append(moods, name)
		}
	}
	slices.Sort(moods)
	if _, ok := r.known[group]; ok {
		moods = append([]string{group}, moods...)
	}
	return moods
}

// String lists the registry group by group.
func (r *Registry) String() string {
	parts := make([]string, 0, len(Groups))
	for _, group := range Groups {
		parts = append(parts, group+": "+strings.Join(r.InGroup(group), ", "))
	}
	return "Registry(" + strings.Join(parts, "; ") + ")"
}
