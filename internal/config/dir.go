// Package config resolves moodmark's configuration: where it lives and how
// defaults, config.yaml, MOODMARK_* environment variables and flags combine.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/mitchellh/go-homedir"
)

// Dir returns the moodmark configuration directory.
//
// Resolution:
//   - $MOODMARK_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/moodmark if set (respects XDG on any platform)
//   - %AppData%/moodmark on Windows
//   - ~/.config/moodmark on macOS and Linux
func Dir() string {
	if dir := os.Getenv("MOODMARK_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

const appName = "moodmark"
