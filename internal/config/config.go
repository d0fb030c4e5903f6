package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and artifact location configuration.
type Paths struct {
	// DataDir is the root for analysis artifacts, the bookkeeping
	// database, and generated schedules.
	DataDir string `toml:"data_dir"`
	// TracksDir holds per-track analysis JSON files. Defaults to
	// <data_dir>/tracks.
	TracksDir string `toml:"tracks_dir"`
	// SetlistPath is the show setlist. Defaults to <data_dir>/setlist.json.
	SetlistPath string `toml:"setlist_path"`
	// CatalogPath optionally replaces the compiled-in overlay catalog.
	CatalogPath string `toml:"catalog_path"`
	// OutputPath is the show schedule artifact. Defaults to
	// <data_dir>/show-overlays.json.
	OutputPath string `toml:"output_path"`
	// TimelinePath is the show frame timeline artifact. Defaults to
	// <data_dir>/show-timeline.json.
	TimelinePath string `toml:"timeline_path"`
	LogDir       string `toml:"log_dir"`
}

// Show contains selection parameters that vary per show.
type Show struct {
	// Seed salts every per-song generator so the same track can select
	// differently across shows while staying reproducible within one.
	Seed int64 `toml:"seed"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for phosphor.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Show    Show    `toml:"show"`
	Logging Logging `toml:"logging"`
}

// SampleConfig returns the annotated sample configuration file.
func SampleConfig() string {
	return sampleConfig
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/phosphor/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and derived.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	projectPath, err := filepath.Abs("phosphor.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates every directory the pipeline writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.Paths.DataDir,
		c.Paths.TracksDir,
		c.Paths.LogDir,
		filepath.Dir(c.Paths.OutputPath),
		filepath.Dir(c.Paths.TimelinePath),
	}
	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
