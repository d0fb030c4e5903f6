package analysis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ArtifactPath returns the analysis artifact location for a track.
func ArtifactPath(tracksDir, trackID string) string {
	return filepath.Join(tracksDir, trackID+"-analysis.json")
}

// Load reads and parses one analysis artifact.
func Load(path string) (*TrackAnalysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read analysis: %w", err)
	}
	var ta TrackAnalysis
	if err := json.Unmarshal(data, &ta); err != nil {
		return nil, fmt.Errorf("parse analysis %s: %w", path, err)
	}
	return &ta, nil
}

// LoadTrack reads the artifact for trackID from tracksDir.
func LoadTrack(tracksDir, trackID string) (*TrackAnalysis, error) {
	return Load(ArtifactPath(tracksDir, trackID))
}
