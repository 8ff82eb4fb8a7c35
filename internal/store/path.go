package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/noteping/noteping/common"
)

// DefaultPath resolves the notes database location: the NOTEPING_DB_PATH
// override when set, otherwise noteping/notes.db under the user config
// directory. The parent directory is created if missing.
func DefaultPath() (string, error) {
	if p := os.Getenv(common.DBPathEnv); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error: cannot resolve config directory: %w", err)
	}
	dir = filepath.Join(dir, "noteping")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("error: cannot create data directory: %w", err)
	}
	return filepath.Join(dir, "notes.db"), nil
}
