package envfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnv(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		_ = os.Unsetenv(key) //nolint:errcheck
	}
}

func TestLoad_NonexistentFile(t *testing.T) {
	if err := Load("/nonexistent/.env"); err != nil {
		t.Fatalf("expected nil for nonexistent file, got %v", err)
	}
}

func TestLoad_SetsUnsetVars(t *testing.T) {
	path := writeEnv(t, ".env.local", "MOODMARK_TEST_A=hello\nexport MOODMARK_TEST_B=\"quoted value\"\n# comment\n\nMOODMARK_TEST_C='single'\n")
	unset(t, "MOODMARK_TEST_A", "MOODMARK_TEST_B", "MOODMARK_TEST_C")

	if err := Load(path); err != nil {
		t.Fatal(err)
	}

	want := map[string]string{
		"MOODMARK_TEST_A": "hello",
		"MOODMARK_TEST_B": "quoted value",
		"MOODMARK_TEST_C": "single",
	}
	for key, value := range want {
		if got := os.Getenv(key); got != value {
			t.Errorf("%s = %q, want %q", key, got, value)
		}
	}
}

func TestLoad_DoesNotOverrideExisting(t *testing.T) {
	path := writeEnv(t, ".env", "MOODMARK_TEST_D=from_file\n")
	t.Setenv("MOODMARK_TEST_D", "from_env")

	if err := Load(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("MOODMARK_TEST_D"); got != "from_env" {
		t.Errorf("MOODMARK_TEST_D = %q, want %q (env should take precedence)", got, "from_env")
	}
}

func TestLoadAll_FirstFileWins(t *testing.T) {
	local := writeEnv(t, ".env.local", "MOODMARK_TEST_E=local\n")
	shared := writeEnv(t, ".env", "MOODMARK_TEST_E=shared\nMOODMARK_TEST_F=shared\n")
	unset(t, "MOODMARK_TEST_E", "MOODMARK_TEST_F")

	if err := LoadAll(local, "/nonexistent/.env", shared); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("MOODMARK_TEST_E"); got != "local" {
		t.Errorf("MOODMARK_TEST_E = %q, want local", got)
	}
	if got := os.Getenv("MOODMARK_TEST_F"); got != "shared" {
		t.Errorf("MOODMARK_TEST_F = %q, want shared", got)
	}
}
