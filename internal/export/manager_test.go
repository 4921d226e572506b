package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gorewood/moodmark/internal/config"
	"github.com/gorewood/moodmark/internal/journal"
)

// testDays builds a journal with one entry on each date.
func testDays(t *testing.T, dates ...string) []*journal.Day {
	t.Helper()
	j := journal.New(journal.DefaultConfig(), nil)
	for _, date := range dates {
		day, err := j.Day(date)
		if err != nil {
			t.Fatalf("Day(%s) error: %v", date, err)
		}
		_, err = day.CreateEntryFromRow(journal.Row{
			journal.ColTime:       "10:00",
			journal.ColMood:       "good",
			journal.ColActivities: "reading",
			journal.ColNote:       "Note for " + date,
		})
		if err != nil {
			t.Fatalf("CreateEntryFromRow() error: %v", err)
		}
	}
	return j.Days()
}

func newTestManager(dest string, force config.ForceMode, decider Decider) *Manager {
	return NewManager(dest, force, decider, zerolog.Nop())
}

func readNote(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestNotePath(t *testing.T) {
	days := testDays(t, "2022-03-07")
	got := NotePath("/vault", days[0].Date())
	want := filepath.Join("/vault", "2022", "03", "2022-03-07.md")
	if got != want {
		t.Errorf("NotePath() = %q, want %q", got, want)
	}
}

func TestOutputAll_CreatesNotes(t *testing.T) {
	dest := t.TempDir()
	days := testDays(t, "2022-10-25", "2022-11-01")

	summary, err := newTestManager(dest, config.ForceUnset, nil).OutputAll(context.Background(), days)
	if err != nil {
		t.Fatalf("OutputAll() error: %v", err)
	}
	if summary.Created != 2 || summary.Written() != 2 || summary.Skipped() != 0 {
		t.Errorf("summary = %+v", summary)
	}

	path := filepath.Join(dest, "2022", "10", "2022-10-25.md")
	want := "---\ntags: daylio\n---\n\n## good | 10:00\n#reading\nNote for 2022-10-25\n\n"
	if got := readNote(t, path); got != want {
		t.Errorf("note = %q, want %q", got, want)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != notePerm {
		t.Errorf("mode = %v, want %v", info.Mode().Perm(), os.FileMode(notePerm))
	}

	leftovers, _ := filepath.Glob(filepath.Join(dest, "2022", "10", ".tmp-*"))
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
}

func TestOutputAll_Idempotent(t *testing.T) {
	dest := t.TempDir()
	days := testDays(t, "2022-10-25", "2022-10-26")
	manager := newTestManager(dest, config.ForceUnset, DeciderFunc(func(context.Context, string) (bool, error) {
		t.Error("decider must not be consulted for unchanged notes")
		return false, nil
	}))

	if _, err := manager.OutputAll(context.Background(), days); err != nil {
		t.Fatal(err)
	}
	summary, err := manager.OutputAll(context.Background(), days)
	if err != nil {
		t.Fatal(err)
	}
	if summary.SkippedUnchanged != 2 || summary.Written() != 0 {
		t.Errorf("second run summary = %+v, want 2 unchanged", summary)
	}
}

func TestOutputAll_ChangedNote(t *testing.T) {
	tests := []struct {
		name          string
		force         config.ForceMode
		decision      bool
		wantOutcome   Outcome
		wantOverwrite bool
		wantAsked     bool
	}{
		{name: "reject keeps", force: config.ForceReject, wantOutcome: SkippedConflict},
		{name: "accept overwrites", force: config.ForceAccept, wantOutcome: Overwritten, wantOverwrite: true},
		{name: "prompt yes", decision: true, wantOutcome: Overwritten, wantOverwrite: true, wantAsked: true},
		{name: "prompt no", decision: false, wantOutcome: SkippedConflict, wantAsked: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest := t.TempDir()
			days := testDays(t, "2022-10-25")
			path := NotePath(dest, days[0].Date())
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, []byte("edited by hand\n"), 0o600); err != nil {
				t.Fatal(err)
			}

			asked := ""
			decider := DeciderFunc(func(_ context.Context, p string) (bool, error) {
				asked = p
				return tt.decision, nil
			})
			summary, err := newTestManager(dest, tt.force, decider).OutputAll(context.Background(), days)
			if err != nil {
				t.Fatalf("OutputAll() error: %v", err)
			}

			if got := summary.Files[0].Outcome; got != tt.wantOutcome {
				t.Errorf("outcome = %q, want %q", got, tt.wantOutcome)
			}
			if (asked == path) != tt.wantAsked {
				t.Errorf("decider asked for %q, wantAsked %v", asked, tt.wantAsked)
			}
			overwritten := readNote(t, path) != "edited by hand\n"
			if overwritten != tt.wantOverwrite {
				t.Errorf("overwritten = %v, want %v", overwritten, tt.wantOverwrite)
			}
		})
	}
}

func TestOutputAll_NilDeciderKeeps(t *testing.T) {
	dest := t.TempDir()
	days := testDays(t, "2022-10-25")
	path := NotePath(dest, days[0].Date())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("mine"), 0o600); err != nil {
		t.Fatal(err)
	}

	summary, err := newTestManager(dest, config.ForceUnset, nil).OutputAll(context.Background(), days)
	if err != nil {
		t.Fatal(err)
	}
	if summary.SkippedConflict != 1 || readNote(t, path) != "mine" {
		t.Errorf("summary = %+v, note = %q", summary, readNote(t, path))
	}
}

func TestOutputAll_Aborted(t *testing.T) {
	dest := t.TempDir()
	days := testDays(t, "2022-10-25", "2022-10-26", "2022-10-27")
	second := NotePath(dest, days[1].Date())
	if err := os.MkdirAll(filepath.Dir(second), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("mine"), 0o600); err != nil {
		t.Fatal(err)
	}

	decider := DeciderFunc(func(context.Context, string) (bool, error) {
		return false, ErrAborted
	})
	summary, err := newTestManager(dest, config.ForceUnset, decider).OutputAll(context.Background(), days)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("OutputAll() error = %v, want ErrAborted", err)
	}
	if summary.Created != 1 {
		t.Errorf("Created = %d, want the note written before the interrupt", summary.Created)
	}
	if _, err := os.Stat(NotePath(dest, days[2].Date())); !errors.Is(err, os.ErrNotExist) {
		t.Error("no note may be written after the interrupt")
	}
}

func TestOutputAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestManager(t.TempDir(), config.ForceAccept, nil).OutputAll(ctx, testDays(t, "2022-10-25"))
	if !errors.Is(err, ErrAborted) || !errors.Is(err, context.Canceled) {
		t.Errorf("OutputAll() error = %v, want ErrAborted wrapping context.Canceled", err)
	}
}

func TestOutputAll_WriteFailureContinues(t *testing.T) {
	dest := t.TempDir()
	days := testDays(t, "2021-05-01", "2022-10-25")

	// A file where the 2021 directory should be makes that note unwritable.
	if err := os.WriteFile(filepath.Join(dest, "2021"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	manager := NewManager(dest, config.ForceUnset, nil, zerolog.New(&logs))
	summary, err := manager.OutputAll(context.Background(), days)
	if err != nil {
		t.Fatalf("OutputAll() error: %v", err)
	}
	if summary.Failed != 1 || summary.Created != 1 {
		t.Errorf("summary = %+v, want 1 failed and 1 created", summary)
	}
	if summary.Files[0].Error == "" {
		t.Error("failed file should carry its error")
	}
	if !bytes.Contains(logs.Bytes(), []byte("note skipped")) {
		t.Errorf("failure should be logged: %s", logs.String())
	}
}

func TestOutputAll_SkipsEmptyDays(t *testing.T) {
	j := journal.New(journal.DefaultConfig(), nil)
	if _, err := j.Day("2022-10-25"); err != nil {
		t.Fatal(err)
	}
	dest := t.TempDir()

	summary, err := newTestManager(dest, config.ForceUnset, nil).OutputAll(context.Background(), j.Days())
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Files) != 0 {
		t.Errorf("empty day produced %v", summary.Files)
	}
	entries, _ := os.ReadDir(dest)
	if len(entries) != 0 {
		t.Errorf("destination should stay empty, has %d entries", len(entries))
	}
}

func TestSummary_String(t *testing.T) {
	s := Summary{Created: 2, Overwritten: 1, SkippedUnchanged: 3, Force: config.ForceReject.String()}
	want := "2 created, 1 overwritten, 3 skipped (3 unchanged, 0 kept, 0 failed); changed notes kept without asking"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	quiet := Summary{Created: 1, Force: config.ForceUnset.String()}
	if got := quiet.String(); got != "1 created, 0 overwritten, 0 skipped" {
		t.Errorf("String() = %q", got)
	}
}
