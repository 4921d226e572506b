package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/moodmark/internal/temporal"
)

// notePerm is the mode of written notes.
const notePerm = 0o644

// RelativePath returns the vault-relative path of the note for date: YYYY/MM/YYYY-MM-DD.md.
func RelativePath(date temporal.Date) string {
	return filepath.Join(
		fmt.Sprintf("%04d", date.Year),
		fmt.Sprintf("%02d", int(date.Month)),
		date.String()+".md",
	)
}

// NotePath returns the path of the note for date under destination.
func NotePath(destination string, date temporal.Date) string {
	return filepath.Join(destination, RelativePath(date))
}

// atomicWrite writes data to path using write-to-temp-then-rename.
// The temp file is created in the same directory as path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.md")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Chmod(notePerm); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
