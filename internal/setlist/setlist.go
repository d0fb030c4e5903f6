package setlist

import (
	"encoding/json"
	"fmt"
	"os"

	"phosphor/internal/selection"
)

// Song is one setlist slot.
type Song struct {
	TrackID   string               `json:"trackId"`
	Title     string               `json:"title"`
	Set       int                  `json:"set"`
	AudioFile string               `json:"audioFile,omitempty"`
	Overrides *selection.Overrides `json:"overlayOverrides,omitempty"`
}

// Setlist is the full show description.
type Setlist struct {
	Date     string `json:"date"`
	AudioDir string `json:"audioDir,omitempty"`
	Songs    []Song `json:"songs"`
}

// Load reads and validates a setlist file.
func Load(path string) (*Setlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read setlist: %w", err)
	}
	var sl Setlist
	if err := json.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("parse setlist %s: %w", path, err)
	}
	if len(sl.Songs) == 0 {
		return nil, fmt.Errorf("setlist %s has no songs", path)
	}

	seen := make(map[string]struct{}, len(sl.Songs))
	for i, song := range sl.Songs {
		if song.TrackID == "" {
			return nil, fmt.Errorf("setlist %s: song %d has no trackId", path, i)
		}
		if _, dup := seen[song.TrackID]; dup {
			return nil, fmt.Errorf("setlist %s: duplicate trackId %q", path, song.TrackID)
		}
		seen[song.TrackID] = struct{}{}
	}
	return &sl, nil
}

// Find returns the song with the given trackID.
func (s *Setlist) Find(trackID string) (Song, bool) {
	for _, song := range s.Songs {
		if song.TrackID == trackID {
			return song, true
		}
	}
	return Song{}, false
}
