package repositories

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Create the data directory that holds the .train files.
func InitDataDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return errors.New("init data dir: path is empty")
	}

	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("init data dir: %q exists and is not a directory", dir)
	case err == nil:
		return nil
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("init data dir: stat %q: %w", dir, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("init data dir: create %q: %w", dir, err)
	}
	return nil
}
