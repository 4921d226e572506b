package mood

import (
	"fmt"
	"os"
	"slices"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// CouldNotLoadError is returned when a custom mood file cannot be read or decoded.
type CouldNotLoadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *CouldNotLoadError) Error() string {
	return fmt.Sprintf("could not load moods from %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CouldNotLoadError) Unwrap() error {
	return e.Err
}

// Load reads a custom mood document (JSON or YAML) and builds a Registry from it.
// An empty path yields the standard registry. When the file cannot be read or
// decoded, Load still returns the standard registry together with a
// *CouldNotLoadError so the caller can report the fallback.
func Load(path string) (*Registry, error) {
	if path == "" {
		return New(nil), nil
	}

	expanded, err := homedir.Expand(os.ExpandEnv(path))
	if err != nil {
		return New(nil), &CouldNotLoadError{Path: path, Err: err}
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return New(nil), &CouldNotLoadError{Path: path, Err: err}
	}

	doc, err := Decode(data)
	if err != nil {
		return New(nil), &CouldNotLoadError{Path: path, Err: err}
	}
	return New(doc), nil
}

// Decode parses a mood document. YAML is a superset of JSON, so both
// {"good": ["fine"]} and "good: [fine]" are accepted. Keys other than the
// five groups are ignored whatever their value; a group whose value is not
// a list makes the whole document invalid.
func Decode(data []byte) (Taxonomy, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding mood document: %w", err)
	}

	doc := make(Taxonomy, len(Groups))
	for group, value := range raw {
		if value == nil || !slices.Contains(Groups, group) {
			continue
		}
		list, ok := value.([]any)
		if !ok {
			return nil, fmt.Errorf("decoding mood document: group %q must be a list, got %T", group, value)
		}
		doc[group] = list
	}
	return doc, nil
}
