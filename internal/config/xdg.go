// ABOUTME: XDG Base Directory specification helpers
// ABOUTME: Resolves wordbook data and config directories with fallbacks
package config

import (
	"os"
	"path/filepath"
)

// AppName names the wordbook subdirectory under the XDG roots.
const AppName = "wordbook"

// GetDataHome returns XDG_DATA_HOME or fallback to ~/.local/share
func GetDataHome() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg
	}
	home := os.Getenv("HOME")
	return filepath.Join(home, ".local", "share")
}

// GetConfigHome returns XDG_CONFIG_HOME or fallback to ~/.config
func GetConfigHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home := os.Getenv("HOME")
	return filepath.Join(home, ".config")
}

// DefaultDataDir is the application-local data directory holding
// words.json and date.json.
func DefaultDataDir() string {
	return filepath.Join(GetDataHome(), AppName)
}

// DefaultConfigPath is where config.toml is looked up.
func DefaultConfigPath() string {
	return filepath.Join(GetConfigHome(), AppName, "config.toml")
}
