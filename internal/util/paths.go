package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir returns the per-user data directory for the app, honoring
// XDG_DATA_HOME. The sqlite store lives here.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// ReportsDir is where exported history reports land: a folder named after
// the app inside the user's documents directory.
func ReportsDir(app string) string {
	return filepath.Join(documentsDir(), strings.ToUpper(app))
}

// documentsDir resolves the user's documents directory from
// XDG_DOCUMENTS_DIR, then user-dirs.dirs, then ~/Documents.
func documentsDir() string {
	if dir := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); dir != "" {
		return resolveHome(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	if data, err := os.ReadFile(filepath.Join(home, ".config", "user-dirs.dirs")); err == nil {
		if dir := lookupUserDir(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return resolveHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

// lookupUserDir scans user-dirs.dirs content for one key's quoted value.
func lookupUserDir(data, key string) string {
	for _, line := range strings.Split(data, "\n") {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), key+"=")
		if !ok {
			continue
		}
		return strings.Trim(rest, `"`)
	}
	return ""
}

func resolveHome(path string) string {
	if !strings.Contains(path, "$HOME") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return strings.ReplaceAll(path, "$HOME", "")
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
