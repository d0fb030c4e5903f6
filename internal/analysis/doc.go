// Package analysis reads the per-track audio-analysis artifacts produced by
// the external feature-extraction subsystem.
//
// Each artifact is one JSON file per track containing frame-rate (30fps)
// feature vectors plus track-level metadata: tempo, duration, and detected
// sections. This package only parses and aggregates those artifacts; signal
// processing itself happens upstream.
//
// It also builds the show timeline: cumulative global frame offsets across
// the setlist so downstream renderers can map a show-wide frame number back
// to a track. Missing tracks keep their slot but do not advance the offset.
package analysis
