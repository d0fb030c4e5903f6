package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"phosphor/internal/profile"
)

// SourceStamp identifies the analysis artifact a cached profile was built
// from. A profile is reused only while the stamp still matches the file on
// disk.
type SourceStamp struct {
	Size    int64
	ModTime time.Time
}

func (st SourceStamp) mtimeString() string {
	return st.ModTime.UTC().Format(time.RFC3339Nano)
}

// CachedProfile returns the cached profile for trackID when the stored
// source stamp matches. The second return reports whether a usable entry
// was found.
func (s *Store) CachedProfile(ctx context.Context, trackID string, stamp SourceStamp) (*profile.Profile, bool, error) {
	ctx = ensureContext(ctx)

	var (
		size        int64
		mtime       string
		profileJSON string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT source_size, source_mtime, profile_json FROM profiles WHERE track_id = ?",
		trackID,
	).Scan(&size, &mtime, &profileJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query cached profile: %w", err)
	}

	if size != stamp.Size || mtime != stamp.mtimeString() {
		return nil, false, nil
	}

	var p profile.Profile
	if err := json.Unmarshal([]byte(profileJSON), &p); err != nil {
		// A corrupt cache row is treated as a miss and overwritten on
		// the next save.
		return nil, false, nil
	}
	return &p, true, nil
}

// SaveProfile stores or replaces the cached profile for a track.
func (s *Store) SaveProfile(ctx context.Context, p *profile.Profile, stamp SourceStamp) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.execWithRetry(ctx,
		`INSERT INTO profiles (track_id, source_size, source_mtime, profile_json, updated_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(track_id) DO UPDATE SET
             source_size = excluded.source_size,
             source_mtime = excluded.source_mtime,
             profile_json = excluded.profile_json,
             updated_at = excluded.updated_at`,
		p.TrackID, stamp.Size, stamp.mtimeString(), string(payload), now,
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// ClearProfiles drops every cached profile.
func (s *Store) ClearProfiles(ctx context.Context) error {
	if _, err := s.execWithRetry(ctx, "DELETE FROM profiles"); err != nil {
		return fmt.Errorf("clear profiles: %w", err)
	}
	return nil
}

// ProfileCount reports the number of cached profiles.
func (s *Store) ProfileCount(ctx context.Context) (int, error) {
	ctx = ensureContext(ctx)
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM profiles").Scan(&count); err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}
	return count, nil
}
