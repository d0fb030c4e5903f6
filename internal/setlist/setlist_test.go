package setlist

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleSetlist = `{
  "date": "1977-05-08",
  "audioDir": "audio/1977-05-08",
  "songs": [
    {"trackId": "s1t01", "title": "New Minglewood Blues", "set": 1, "audioFile": "gd77-05-08s1t01.mp3"},
    {"trackId": "s1t02", "title": "Loser", "set": 1, "audioFile": "gd77-05-08s1t02.mp3",
     "overlayOverrides": {"include": ["neonSign"], "exclude": ["strobePulse"], "targetCount": 18}},
    {"trackId": "s2t08", "title": "Morning Dew", "set": 2, "audioFile": "gd77-05-08s2t08.mp3"}
  ]
}`

func writeSetlist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "setlist.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	sl, err := Load(writeSetlist(t, sampleSetlist))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if sl.Date != "1977-05-08" || len(sl.Songs) != 3 {
		t.Errorf("setlist = %+v", sl)
	}

	song, ok := sl.Find("s1t02")
	if !ok {
		t.Fatal("s1t02 missing")
	}
	if song.Overrides == nil {
		t.Fatal("overrides not parsed")
	}
	if len(song.Overrides.Include) != 1 || song.Overrides.Include[0] != "neonSign" {
		t.Errorf("include = %v", song.Overrides.Include)
	}
	// targetCount is parsed for contract fidelity even though the
	// allocator never reads it.
	if song.Overrides.TargetCount != 18 {
		t.Errorf("targetCount = %d, want 18", song.Overrides.TargetCount)
	}

	if _, ok := sl.Find("s9t99"); ok {
		t.Error("Find matched a nonexistent track")
	}
}

func TestLoadRejectsBadSetlists(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no songs", `{"date": "1977-05-08", "songs": []}`},
		{"missing trackId", `{"songs": [{"title": "Loser", "set": 1}]}`},
		{"duplicate trackId", `{"songs": [{"trackId": "s1t01", "set": 1}, {"trackId": "s1t01", "set": 1}]}`},
		{"malformed", `{"songs": [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeSetlist(t, tt.content)); err == nil {
				t.Error("Load accepted an invalid setlist")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Load succeeded on a missing file")
	}
}
