package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", trimmed, err)
	}
	return abs, nil
}

// normalize expands every path field and derives unset artifact locations
// from the data directory.
func (c *Config) normalize() error {
	fields := []*string{
		&c.Paths.DataDir,
		&c.Paths.TracksDir,
		&c.Paths.SetlistPath,
		&c.Paths.CatalogPath,
		&c.Paths.OutputPath,
		&c.Paths.TimelinePath,
		&c.Paths.LogDir,
	}
	for _, field := range fields {
		expanded, err := expandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}

	if c.Paths.DataDir != "" {
		if c.Paths.TracksDir == "" {
			c.Paths.TracksDir = filepath.Join(c.Paths.DataDir, "tracks")
		}
		if c.Paths.SetlistPath == "" {
			c.Paths.SetlistPath = filepath.Join(c.Paths.DataDir, "setlist.json")
		}
		if c.Paths.OutputPath == "" {
			c.Paths.OutputPath = filepath.Join(c.Paths.DataDir, "show-overlays.json")
		}
		if c.Paths.TimelinePath == "" {
			c.Paths.TimelinePath = filepath.Join(c.Paths.DataDir, "show-timeline.json")
		}
		if c.Paths.LogDir == "" {
			c.Paths.LogDir = filepath.Join(c.Paths.DataDir, "logs")
		}
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}

// DatabasePath returns the bookkeeping database location inside the data
// directory.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Paths.DataDir, "phosphor.db")
}

// LockPath returns the advisory lock file guarding schedule runs.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.DataDir, "phosphor.lock")
}
