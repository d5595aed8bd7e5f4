package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the default config file location based on the
// host OS. It prefers standard locations when available and falls back to a
// dotdir in the user's home directory. The file may not exist.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return "./waymark.json"
	}

	// XDG (Linux) override
	if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "waymark", "config.json")
	}

	// Common Linux/Unix per-user dir
	if isDir(filepath.Join(homeDir, ".config")) {
		return filepath.Join(homeDir, ".config", "waymark", "config.json")
	}

	// macOS: ~/Library/Application Support/Waymark
	if isDir(filepath.Join(homeDir, "Library")) {
		return filepath.Join(homeDir, "Library", "Application Support", "Waymark", "config.json")
	}

	// Windows: %USERPROFILE%/AppData/Local/Waymark
	if isDir(filepath.Join(homeDir, "AppData")) {
		return filepath.Join(homeDir, "AppData", "Local", "Waymark", "config.json")
	}

	// Fallback: ~/.waymark
	return filepath.Join(homeDir, ".waymark", "config.json")
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
