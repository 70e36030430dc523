package cmd

import (
	"os"
	"path/filepath"
	"strings"
)

// expandTilde replaces a leading "~" or "~/" with the user's home
// directory. Other paths pass through unchanged.
func expandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
