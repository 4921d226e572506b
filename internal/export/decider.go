package export

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrAborted is returned when the operator interrupts a run at a prompt.
var ErrAborted = errors.New("aborted by operator")

// Decider chooses whether a changed note may be overwritten.
type Decider interface {
	Decide(ctx context.Context, path string) (bool, error)
}

// DeciderFunc adapts a function to Decider.
type DeciderFunc func(ctx context.Context, path string) (bool, error)

// Decide calls f.
func (f DeciderFunc) Decide(ctx context.Context, path string) (bool, error) {
	return f(ctx, path)
}

// PromptDecider asks a y/N question for each changed note.
// Anything but y or yes keeps the existing file; so does end of input.
type PromptDecider struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPromptDecider creates a prompt reading answers from in and writing questions to out.
func NewPromptDecider(in io.Reader, out io.Writer) *PromptDecider {
	return &PromptDecider{reader: bufio.NewReader(in), out: out}
}

type answer struct {
	text string
	err  error
}

// Decide prompts for path. A cancelled ctx returns ErrAborted.
func (d *PromptDecider) Decide(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrAborted, err)
	}
	_, _ = fmt.Fprintf(d.out, "%s already exists and differs from the journal. Overwrite? (y/N): ", path)

	answers := make(chan answer, 1)
	go func() {
		text, err := d.reader.ReadString('\n')
		answers <- answer{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(d.out)
		return false, fmt.Errorf("%w: %w", ErrAborted, ctx.Err())
	case got := <-answers:
		if got.err != nil && !errors.Is(got.err, io.EOF) {
			return false, fmt.Errorf("reading answer: %w", got.err)
		}
		switch strings.ToLower(strings.TrimSpace(got.text)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}
