package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultJournalName is the journal file created in the home directory.
const DefaultJournalName = ".track"

// DefaultJournalPath returns ~/.track.
func DefaultJournalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to get home directory: %w", err)
	}
	return filepath.Join(home, DefaultJournalName), nil
}

// ResolvePath expands a leading "~" and makes path absolute.
// An empty path resolves to DefaultJournalPath.
func ResolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultJournalPath()
	}

	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	return filepath.Abs(path)
}
