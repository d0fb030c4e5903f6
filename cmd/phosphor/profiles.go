package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"phosphor/internal/analysis"
	"phosphor/internal/config"
	"phosphor/internal/logging"
	"phosphor/internal/profile"
	"phosphor/internal/setlist"
	"phosphor/internal/store"
)

// trackProfile is one setlist song resolved to a scoring profile.
type trackProfile struct {
	song    setlist.Song
	profile profile.Profile
	missing bool
	cached  bool
}

// buildProfiles resolves every setlist song to a profile. Tracks without an
// analysis artifact get the zero-default profile and are flagged missing.
// When resume is true, profiles whose source artifact is unchanged are
// served from the store cache instead of being recomputed.
func buildProfiles(ctx context.Context, cfg *config.Config, st *store.Store, sl *setlist.Setlist, resume bool, logger *slog.Logger) ([]trackProfile, error) {
	tracks := make([]trackProfile, 0, len(sl.Songs))

	for _, song := range sl.Songs {
		path := analysis.ArtifactPath(cfg.Paths.TracksDir, song.TrackID)
		info, err := os.Stat(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("stat analysis for %s: %w", song.TrackID, err)
			}
			logger.Warn("analysis artifact missing, using silent profile",
				logging.String(logging.FieldTrackID, song.TrackID),
				logging.String("title", song.Title))
			p := profile.Build(nil, 0, 0)
			p.TrackID = song.TrackID
			p.Title = song.Title
			p.Set = song.Set
			tracks = append(tracks, trackProfile{song: song, profile: p, missing: true})
			continue
		}

		stamp := store.SourceStamp{Size: info.Size(), ModTime: info.ModTime()}

		if resume && st != nil {
			cached, hit, err := st.CachedProfile(ctx, song.TrackID, stamp)
			if err != nil {
				return nil, err
			}
			if hit {
				logger.Debug("profile served from cache",
					logging.String(logging.FieldTrackID, song.TrackID))
				tracks = append(tracks, trackProfile{song: song, profile: *cached, cached: true})
				continue
			}
		}

		ta, err := analysis.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load analysis for %s: %w", song.TrackID, err)
		}
		p := profile.Build(ta.Frames, ta.Meta.Tempo, len(ta.Meta.Sections))
		p.TrackID = song.TrackID
		p.Title = song.Title
		p.Set = song.Set

		if st != nil {
			if err := st.SaveProfile(ctx, &p, stamp); err != nil {
				return nil, err
			}
		}

		logger.Debug("profile built",
			logging.String(logging.FieldTrackID, song.TrackID),
			logging.Float64("avg_energy", p.AvgEnergy),
			logging.String("dominant_band", string(p.DominantBand)))
		tracks = append(tracks, trackProfile{song: song, profile: p})
	}

	return tracks, nil
}
