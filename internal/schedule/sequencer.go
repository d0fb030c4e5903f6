package schedule

import (
	"phosphor/internal/overlay"
	"phosphor/internal/profile"
	"phosphor/internal/selection"
)

// SongInput is one song ready for selection: its derived profile plus any
// setlist overrides.
type SongInput struct {
	Profile   profile.Profile
	Overrides *selection.Overrides
}

// SongSchedule is the per-song shape persisted in the show artifact. The
// renderer only needs names and the count; weight stays internal to
// allocation.
type SongSchedule struct {
	Title          string   `json:"title"`
	ActiveOverlays []string `json:"activeOverlays"`
	TotalCount     int      `json:"totalCount"`
}

// Schedule is the show-level artifact.
type Schedule struct {
	GeneratedAt string                  `json:"generatedAt"`
	Songs       map[string]SongSchedule `json:"songs"`
}

// SongOutcome pairs a song's artifact entry with the full selection result
// for callers that want weights and counts for reporting.
type SongOutcome struct {
	TrackID string
	Title   string
	Result  selection.Result
}

// Run processes songs in order, threading each selection into the next
// song's variety penalty. The first song sees an empty previous set.
func Run(cat *overlay.Catalog, songs []SongInput, showSeed int64) []SongOutcome {
	outcomes := make([]SongOutcome, 0, len(songs))
	var prev map[string]struct{}

	for _, song := range songs {
		res := selection.Select(cat, song.Profile, prev, song.Overrides, showSeed)
		outcomes = append(outcomes, SongOutcome{
			TrackID: song.Profile.TrackID,
			Title:   song.Profile.Title,
			Result:  res,
		})
		prev = res.Names()
	}
	return outcomes
}

// Build assembles the show artifact from sequencer outcomes. generatedAt is
// an RFC3339 UTC timestamp supplied by the caller so artifact writing stays
// clock-free and testable.
func Build(generatedAt string, outcomes []SongOutcome) Schedule {
	songs := make(map[string]SongSchedule, len(outcomes))
	for _, out := range outcomes {
		songs[out.TrackID] = SongSchedule{
			Title:          out.Title,
			ActiveOverlays: out.Result.ActiveOverlays,
			TotalCount:     out.Result.TotalCount,
		}
	}
	return Schedule{GeneratedAt: generatedAt, Songs: songs}
}
