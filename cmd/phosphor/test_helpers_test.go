package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"phosphor/internal/analysis"
	"phosphor/internal/setlist"
	"phosphor/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	dataDir    string
	tracksDir  string
	configPath string
}

// setupCLITestEnv builds a config file plus a two-song setlist with one
// analyzed track and one missing artifact.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	dataDir := filepath.Join(base, "data")
	tracksDir := filepath.Join(dataDir, "tracks")
	if err := os.MkdirAll(tracksDir, 0o755); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf("[paths]\ndata_dir = %q\n\n[show]\nseed = 42\n", dataDir)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	testsupport.WriteSetlist(t, filepath.Join(dataDir, "setlist.json"), setlist.Setlist{
		Date:     "1977-05-08",
		AudioDir: "audio",
		Songs: []setlist.Song{
			{TrackID: "s1t01", Title: "New Minglewood Blues", Set: 1},
			{TrackID: "s1t02", Title: "Loser", Set: 1},
		},
	})

	testsupport.WriteAnalysis(t, tracksDir, "s1t01", analysis.TrackAnalysis{
		Meta: analysis.Meta{
			Duration:    120.5,
			FPS:         30,
			TotalFrames: 3615,
			Tempo:       118.2,
			Sections: []analysis.Section{
				{FrameStart: 0, FrameEnd: 3615, Label: "A", Energy: "mid", AvgEnergy: 0.4},
			},
		},
		Frames: testsupport.SteadyFrames(90, 0.4, 0.2, 0.5, 0.3),
	})

	return &cliTestEnv{
		baseDir:    base,
		dataDir:    dataDir,
		tracksDir:  tracksDir,
		configPath: configPath,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
