package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"phosphor/internal/analysis"
	"phosphor/internal/setlist"
)

// WriteSetlist marshals the setlist to the config-style JSON layout at path.
func WriteSetlist(t testing.TB, path string, sl setlist.Setlist) {
	t.Helper()
	writeJSON(t, path, sl)
}

// WriteAnalysis writes a track analysis artifact into tracksDir using the
// {trackId}-analysis.json naming convention.
func WriteAnalysis(t testing.TB, tracksDir, trackID string, ta analysis.TrackAnalysis) {
	t.Helper()
	writeJSON(t, analysis.ArtifactPath(tracksDir, trackID), ta)
}

// SteadyFrames builds count frames with identical feature values, useful
// when a test needs a profile with predictable averages.
func SteadyFrames(count int, rms, low, mid, high float64) []analysis.Frame {
	frames := make([]analysis.Frame, count)
	for i := range frames {
		frames[i] = analysis.Frame{
			RMS:      rms,
			Centroid: 0.5,
			Sub:      low,
			Low:      low,
			Mid:      mid,
			High:     high,
			Flatness: 0.3,
		}
	}
	return frames
}

func writeJSON(t testing.TB, path string, v any) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
