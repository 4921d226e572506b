package export

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/moodmark/internal/journal"
	"github.com/gorewood/moodmark/internal/output"
)

func TestViews(t *testing.T) {
	j := journal.New(journal.DefaultConfig(), nil)
	if _, err := j.Day("2022-10-24"); err != nil {
		t.Fatal(err)
	}
	days := append(j.Days(), testDays(t, "2022-10-25")...)

	views, err := Views(days, "", false)
	if err != nil {
		t.Fatalf("Views() error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("len(views) = %d, want empty day skipped", len(views))
	}
	view := views[0]
	if view.Date != "2022-10-25" || view.Count != 1 || view.Path != filepath.Join("2022", "10", "2022-10-25.md") {
		t.Errorf("view = %+v", view)
	}
	if view.Markdown != "" || view.Entries != nil {
		t.Error("summary views should not carry detail")
	}
}

func TestViewDay_Detail(t *testing.T) {
	days := testDays(t, "2022-10-25")

	view, err := ViewDay(days[0], "/vault", true)
	if err != nil {
		t.Fatalf("ViewDay() error: %v", err)
	}
	if len(view.Entries) != 1 || view.Entries[0].Group != "good" || view.Entries[0].Activities[0] != "#reading" {
		t.Errorf("Entries = %+v", view.Entries)
	}
	if !strings.HasPrefix(view.Markdown, "---\ntags: daylio\n---\n\n## good | 10:00") {
		t.Errorf("Markdown = %q", view.Markdown)
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	printer := output.NewPrinter(&buf, true, false)

	views, err := Views(testDays(t, "2022-10-25", "2022-10-26"), "", false)
	if err != nil {
		t.Fatal(err)
	}
	if err := FormatJSON(printer, views); err != nil {
		t.Fatalf("FormatJSON() error: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not a JSON array: %v\n%s", err, buf.String())
	}
	if len(decoded) != 2 || decoded[1]["date"] != "2022-10-26" {
		t.Errorf("decoded = %v", decoded)
	}
	if decoded[0]["entries"] != float64(1) {
		t.Errorf("entries = %v, want 1", decoded[0]["entries"])
	}
}
