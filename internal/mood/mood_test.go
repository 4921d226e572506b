package mood

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNew_StandardFloor(t *testing.T) {
	registry := New(nil)

	for _, group := range Groups {
		got, err := registry.Group(group)
		if err != nil {
			t.Fatalf("Group(%q) unexpected error: %v", group, err)
		}
		if got != group {
			t.Errorf("Group(%q) = %q, want %q", group, got, group)
		}
	}
	if !registry.IsStandard() {
		t.Error("registry without a document should be standard")
	}
	if len(registry.Moods()) != len(Groups) {
		t.Errorf("Moods() has %d entries, want %d", len(registry.Moods()), len(Groups))
	}
}

func TestNew_MergesCustomMoods(t *testing.T) {
	registry := New(Taxonomy{
		"rad":     {"ecstatic", "", 42, "rad"},
		"good":    {"fine", "ecstatic"},
		"neutral": {"vaguely ok"},
		"unknown": {"ignored"},
	})

	tests := []struct {
		mood string
		want string
	}{
		{"ecstatic", Rad},
		{"fine", Good},
		{"vaguely ok", Neutral},
		{"rad", Rad},
	}
	for _, tt := range tests {
		got, err := registry.Group(tt.mood)
		if err != nil {
			t.Fatalf("Group(%q) unexpected error: %v", tt.mood, err)
		}
		if got != tt.want {
			t.Errorf("Group(%q) = %q, want %q", tt.mood, got, tt.want)
		}
	}

	if registry.Knows("ignored") {
		t.Error("moods under unknown groups must be ignored")
	}

	custom := registry.CustomMoods()
	wantCustom := map[string]string{"ecstatic": Rad, "fine": Good, "vaguely ok": Neutral}
	if len(custom) != len(wantCustom) {
		t.Fatalf("CustomMoods() = %v, want %v", custom, wantCustom)
	}
	for mood, group := range wantCustom {
		if custom[mood] != group {
			t.Errorf("CustomMoods()[%q] = %q, want %q", mood, custom[mood], group)
		}
	}
}

func TestNew_DefaultsCannotMove(t *testing.T) {
	registry := New(Taxonomy{"awful": {"rad", "good"}})

	if got, _ := registry.Group("rad"); got != Rad {
		t.Errorf("rad moved to %q", got)
	}
	if !registry.IsStandard() {
		t.Error("colliding moods must not count as custom")
	}
}

func TestGroup_NotFound(t *testing.T) {
	_, err := New(nil).Group("meh")

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want *NotFoundError", err)
	}
	if notFound.Mood != "meh" {
		t.Errorf("Mood = %q, want %q", notFound.Mood, "meh")
	}
}

func TestGroup_CaseSensitive(t *testing.T) {
	if New(nil).Knows("Rad") {
		t.Error("mood lookup must be case-sensitive")
	}
}

func TestEqual(t *testing.T) {
	standard := New(nil)

	reducible := []Taxonomy{
		{},
		{"unknown": {"x"}},
		{"good": {"", 1, "good"}},
	}
	for _, doc := range reducible {
		if !New(doc).Equal(standard) {
			t.Errorf("New(%v) should equal the standard registry", doc)
		}
	}

	custom := New(Taxonomy{"good": {"fine"}})
	if custom.Equal(standard) {
		t.Error("custom registry should not equal the standard one")
	}
	if !custom.Equal(New(Taxonomy{"good": {"fine"}})) {
		t.Error("registries from the same document should be equal")
	}
}

func TestMoods_ReturnsCopy(t *testing.T) {
	registry := New(nil)
	moods := registry.Moods()
	moods["hacked"] = Rad

	if registry.Knows("hacked") {
		t.Error("Moods() must not expose internal state")
	}
}

func TestInGroup(t *testing.T) {
	registry := New(Taxonomy{"good": {"fine", "alright"}})
	got := registry.InGroup(Good)
	want := []string{"good", "alright", "fine"}
	if len(got) != len(want) {
		t.Fatalf("InGroup = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("InGroup[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	writeFile := func(name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
		return path
	}

	t.Run("empty path", func(t *testing.T) {
		registry, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !registry.IsStandard() {
			t.Error("expected standard registry")
		}
	})

	t.Run("json document", func(t *testing.T) {
		path := writeFile("moods.json", `{"rad": ["amazing"], "awful": ["dreadful", null]}`)
		registry, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, _ := registry.Group("dreadful"); got != Awful {
			t.Errorf("Group(dreadful) = %q, want %q", got, Awful)
		}
	})

	t.Run("yaml document", func(t *testing.T) {
		path := writeFile("moods.yaml", "good:\n  - fine\n  - okay\n")
		registry, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(registry.CustomMoods()) != 2 {
			t.Errorf("CustomMoods() = %v, want 2 entries", registry.CustomMoods())
		}
	})

	t.Run("unknown keys ignored", func(t *testing.T) {
		path := writeFile("versioned.json", `{"good": ["fine"], "version": 2, "meta": {"author": "me"}, "meh": ["whatever"]}`)
		registry, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, _ := registry.Group("fine"); got != Good {
			t.Errorf("Group(fine) = %q, want %q", got, Good)
		}
		if registry.Knows("whatever") {
			t.Error("moods under an unknown group must be ignored")
		}
	})

	failures := map[string]string{
		"missing file":   filepath.Join(dir, "nope.json"),
		"malformed json": writeFile("broken.json", `{"rad": [`),
		"not a list":     writeFile("scalar.json", `{"rad": "amazing"}`),
		"not a mapping":  writeFile("list.json", `["rad"]`),
	}
	for name, path := range failures {
		t.Run(name, func(t *testing.T) {
			registry, err := Load(path)
			var loadErr *CouldNotLoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("error = %v, want *CouldNotLoadError", err)
			}
			if loadErr.Path != path {
				t.Errorf("Path = %q, want %q", loadErr.Path, path)
			}
			if registry == nil || !registry.Equal(New(nil)) {
				t.Error("failed load must fall back to the standard registry")
			}
		})
	}
}

func TestMarker(t *testing.T) {
	for _, group := range Groups {
		if Marker(group) == "" {
			t.Errorf("Marker(%q) is empty", group)
		}
		if TerminalColour(group) == "" {
			t.Errorf("TerminalColour(%q) is empty", group)
		}
	}
	if Marker("meh") != "" {
		t.Error("unknown group should have no marker")
	}
}
