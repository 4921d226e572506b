package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/gorewood/moodmark/internal/config"
	"github.com/gorewood/moodmark/internal/journal"
)

// Manager writes days as notes under a destination directory.
type Manager struct {
	destination string
	force       config.ForceMode
	decider     Decider
	logger      zerolog.Logger
}

// NewManager creates a Manager. decider is consulted only when force is unset;
// a nil decider then keeps every changed note.
func NewManager(destination string, force config.ForceMode, decider Decider, logger zerolog.Logger) *Manager {
	return &Manager{
		destination: destination,
		force:       force,
		decider:     decider,
		logger:      logger,
	}
}

// Destination returns the vault directory notes are written under.
func (m *Manager) Destination() string {
	return m.destination
}

// OutputAll writes every non-empty day. Per-file failures are counted in the
// summary; the only error returned is ErrAborted, together with the summary
// of the files handled before the interrupt.
func (m *Manager) OutputAll(ctx context.Context, days []*journal.Day) (Summary, error) {
	summary := Summary{Force: m.force.String()}
	for _, day := range days {
		if day.IsEmpty() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("%w: %w", ErrAborted, err)
		}

		result, err := m.Output(ctx, day)
		if err != nil {
			return summary, err
		}
		summary.record(result)
	}

	m.logger.Info().
		Int("created", summary.Created).
		Int("overwritten", summary.Overwritten).
		Int("unchanged", summary.SkippedUnchanged).
		Int("kept", summary.SkippedConflict).
		Int("failed", summary.Failed).
		Msg("notes written")
	return summary, nil
}

// Output writes the note for one day and reports what happened.
// It returns an error only when the operator aborted at a prompt.
func (m *Manager) Output(ctx context.Context, day *journal.Day) (FileResult, error) {
	path := NotePath(m.destination, day.Date())
	result := FileResult{Date: day.String(), Path: path}
	logger := m.logger.With().Str("path", path).Logger()

	content, err := day.Render()
	if err != nil {
		return m.fail(logger, result, err), nil
	}

	existing, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := m.write(path, content); err != nil {
			return m.fail(logger, result, err), nil
		}
		logger.Debug().Msg("note created")
		result.Outcome, result.Bytes = Created, len(content)
		return result, nil
	case err != nil:
		return m.fail(logger, result, err), nil
	}

	if bytes.Equal(existing, content) {
		logger.Debug().Msg("note unchanged")
		result.Outcome = SkippedUnchanged
		return result, nil
	}

	overwrite, err := m.decide(ctx, path)
	if err != nil {
		if errors.Is(err, ErrAborted) {
			return result, err
		}
		return m.fail(logger, result, err), nil
	}
	if !overwrite {
		logger.Info().Msg("changed note kept")
		result.Outcome = SkippedConflict
		return result, nil
	}

	if err := m.write(path, content); err != nil {
		return m.fail(logger, result, err), nil
	}
	logger.Info().Msg("note overwritten")
	result.Outcome, result.Bytes = Overwritten, len(content)
	return result, nil
}

func (m *Manager) decide(ctx context.Context, path string) (bool, error) {
	switch m.force {
	case config.ForceAccept:
		return true, nil
	case config.ForceReject:
		return false, nil
	}
	if m.decider == nil {
		return false, nil
	}
	return m.decider.Decide(ctx, path)
}

func (m *Manager) write(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create note directory: %w", err)
	}
	return atomicWrite(path, content)
}

func (m *Manager) fail(logger zerolog.Logger, result FileResult, err error) FileResult {
	logger.Error().Err(err).Msg("note skipped")
	result.Outcome = Failed
	result.Error = err.Error()
	return result
}
