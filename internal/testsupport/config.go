// Package testsupport provides helpers for constructing configs and fixture
// artifacts in tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"phosphor/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.TracksDir = filepath.Join(base, "data", "tracks")
	cfgVal.Paths.SetlistPath = filepath.Join(base, "data", "setlist.json")
	cfgVal.Paths.OutputPath = filepath.Join(base, "data", "show-overlays.json")
	cfgVal.Paths.TimelinePath = filepath.Join(base, "data", "show-timeline.json")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}

	return builder.cfg
}

// WithSeed sets the show seed on the test config.
func WithSeed(seed int64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Show.Seed = seed
	}
}

// WithCatalogPath points the test config at an overlay catalog override.
func WithCatalogPath(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.CatalogPath = path
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
