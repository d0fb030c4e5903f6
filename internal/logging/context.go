package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldTrackID is the standardized structured logging key for setlist track identifiers.
	FieldTrackID = "track_id"
	// FieldRunID is the standardized structured logging key for schedule-run identifiers.
	FieldRunID = "run_id"
	// FieldShow is the standardized structured logging key for the show date.
	FieldShow = "show"
)

type contextKey int

const (
	trackIDKey contextKey = iota
	runIDKey
)

// WithTrackID tags the context with the track currently being processed.
func WithTrackID(ctx context.Context, trackID string) context.Context {
	return context.WithValue(ctx, trackIDKey, trackID)
}

// WithRunID tags the context with the schedule-run identifier.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if trackID, ok := ctx.Value(trackIDKey).(string); ok && trackID != "" {
		fields = append(fields, slog.String(FieldTrackID, trackID))
	}
	if runID, ok := ctx.Value(runIDKey).(string); ok && runID != "" {
		fields = append(fields, slog.String(FieldRunID, runID))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from
// the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
