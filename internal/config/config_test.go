package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Error("exists = true for a missing file")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Errorf("defaults not applied: %+v", cfg.Logging)
	}
	if cfg.Paths.DataDir == "" {
		t.Error("data dir empty after defaults")
	}
}

func TestLoadDerivesPathsFromDataDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[paths]\ndata_dir = \"" + dir + "\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("exists = false for a present file")
	}
	if resolved != path {
		t.Errorf("resolved = %q, want %q", resolved, path)
	}
	if got, want := cfg.Paths.TracksDir, filepath.Join(dir, "tracks"); got != want {
		t.Errorf("TracksDir = %q, want %q", got, want)
	}
	if got, want := cfg.Paths.SetlistPath, filepath.Join(dir, "setlist.json"); got != want {
		t.Errorf("SetlistPath = %q, want %q", got, want)
	}
	if got, want := cfg.Paths.OutputPath, filepath.Join(dir, "show-overlays.json"); got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
	if got, want := cfg.Paths.TimelinePath, filepath.Join(dir, "show-timeline.json"); got != want {
		t.Errorf("TimelinePath = %q, want %q", got, want)
	}
	if got, want := cfg.DatabasePath(), filepath.Join(dir, "phosphor.db"); got != want {
		t.Errorf("DatabasePath = %q, want %q", got, want)
	}
}

func TestLoadRespectsExplicitPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		"data_dir = \"" + dir + "\"",
		"tracks_dir = \"" + filepath.Join(dir, "elsewhere") + "\"",
		"",
		"[show]",
		"seed = 42",
		"",
		"[logging]",
		"format = \"json\"",
		"level = \"debug\"",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := cfg.Paths.TracksDir, filepath.Join(dir, "elsewhere"); got != want {
		t.Errorf("TracksDir = %q, want %q", got, want)
	}
	if cfg.Show.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Show.Seed)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadRejectsBadLoggingFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[logging]\nformat = \"xml\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Error("Load accepted an unknown logging format")
	}
}

func TestValidateLevels(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted an unknown level")
	}
	cfg.Logging.Level = "warn"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := expandPath("~/phosphor")
	if err != nil {
		t.Fatalf("expandPath: %v", err)
	}
	if want := filepath.Join(home, "phosphor"); got != want {
		t.Errorf("expandPath = %q, want %q", got, want)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Paths.DataDir = filepath.Join(dir, "data")
	if err := cfg.normalize(); err != nil {
		t.Fatal(err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, p := range []string{cfg.Paths.DataDir, cfg.Paths.TracksDir, cfg.Paths.LogDir} {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			t.Errorf("directory %s not created (err=%v)", p, err)
		}
	}
}

func TestSampleConfigParses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(SampleConfig()), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
}
