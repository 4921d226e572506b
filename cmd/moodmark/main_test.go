package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRootCommand_Version(t *testing.T) {
	version = "1.2.3"

	res := execute(t, "", "--version")
	if res.err != nil {
		t.Fatalf("Execute() error = %v", res.err)
	}
	if !strings.Contains(res.stdout, "1.2.3") {
		t.Errorf("--version output should contain version: %q", res.stdout)
	}
	if !strings.Contains(res.stdout, "moodmark") {
		t.Errorf("--version output should contain 'moodmark': %q", res.stdout)
	}
}

func TestRootCommand_Help(t *testing.T) {
	res := execute(t, "", "--help")
	if res.err != nil {
		t.Fatalf("Execute() error = %v", res.err)
	}

	expectations := []string{
		"moodmark",
		"Usage:",
		"--json",
		"--moods",
		"Core Commands:",
		"convert",
		"preview",
	}
	for _, expected := range expectations {
		if !strings.Contains(res.stdout, expected) {
			t.Errorf("--help output should contain %q: %q", expected, res.stdout)
		}
	}
}

func TestRootCommand_JSONFlag_NoSubcommand(t *testing.T) {
	res := execute(t, "", "--json")
	if res.err == nil {
		t.Fatal("Expected error when running with --json but no subcommand")
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(res.stdout), &result); err != nil {
		t.Fatalf("Output should be valid JSON: %v\nOutput: %s", err, res.stdout)
	}
	if _, ok := result["error"]; !ok {
		t.Errorf("JSON output should contain 'error' field: %s", res.stdout)
	}
	if _, ok := result["code"]; !ok {
		t.Errorf("JSON output should contain 'code' field: %s", res.stdout)
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"json", "moods", "verbose", "quiet", "color-output"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s should be a persistent flag", name)
		}
	}
}

func TestBuildVersion(t *testing.T) {
	defer func(v, c, d string) { version, commit, date = v, c, d }(version, commit, date)

	version, commit, date = "1.0.0", "none", "unknown"
	if got := buildVersion(); got != "1.0.0" {
		t.Errorf("buildVersion() = %q, want 1.0.0", got)
	}

	commit, date = "abcdef123456", "2024-01-01"
	if got := buildVersion(); got != "1.0.0 (abcdef1, 2024-01-01)" {
		t.Errorf("buildVersion() = %q", got)
	}
}
