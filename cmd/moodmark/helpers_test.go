package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `full_date,date,weekday,time,mood,activities,note_title,note
2022-10-25,October 25,Tuesday,10:04 PM,vaguely ok,"bicycle | chess",Day,Ok.
2022-10-25,October 25,Tuesday,8:00 AM,rad,"reading",,
2022-10-26,October 26,Wednesday,21:30,awful,,,
2022-10-27,October 27,Thursday,not a time,good,,,
`

const note20221025 = "---\ntags: daylio\n---\n\n" +
	"## rad | 08:00\n#reading\n\n" +
	"## vaguely ok | 22:04 | Day\n#bicycle #chess\nOk.\n\n"

// cliResult captures one execution of the root command.
type cliResult struct {
	stdout string
	stderr string
	err    error
}

// execute runs the root command with args and stdin, isolated from any
// user configuration.
func execute(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	t.Setenv("MOODMARK_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
