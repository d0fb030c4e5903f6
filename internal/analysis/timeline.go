package analysis

import "math"

// TimelineInput is one setlist slot's contribution to the show timeline.
type TimelineInput struct {
	TrackID     string
	TotalFrames int
	Duration    float64
	Missing     bool
}

// TimelineTrack locates one track inside the global show frame space.
type TimelineTrack struct {
	TrackID          string `json:"trackId"`
	GlobalFrameStart int    `json:"globalFrameStart"`
	GlobalFrameEnd   int    `json:"globalFrameEnd"`
	TotalFrames      int    `json:"totalFrames"`
	Missing          bool   `json:"missing,omitempty"`
}

// Timeline maps every setlist track to its global frame range.
type Timeline struct {
	Date          string          `json:"date"`
	TotalFrames   int             `json:"totalFrames"`
	TotalDuration float64         `json:"totalDuration"`
	Tracks        []TimelineTrack `json:"tracks"`
}

// BuildTimeline folds per-track frame counts into cumulative global offsets.
// Missing tracks occupy a zero-width slot at the current offset.
func BuildTimeline(date string, inputs []TimelineInput) Timeline {
	tracks := make([]TimelineTrack, 0, len(inputs))
	offset := 0
	duration := 0.0

	for _, in := range inputs {
		if in.Missing {
			tracks = append(tracks, TimelineTrack{
				TrackID:          in.TrackID,
				GlobalFrameStart: offset,
				GlobalFrameEnd:   offset,
				Missing:          true,
			})
			continue
		}
		tracks = append(tracks, TimelineTrack{
			TrackID:          in.TrackID,
			GlobalFrameStart: offset,
			GlobalFrameEnd:   offset + in.TotalFrames,
			TotalFrames:      in.TotalFrames,
		})
		offset += in.TotalFrames
		duration += in.Duration
	}

	return Timeline{
		Date:          date,
		TotalFrames:   offset,
		TotalDuration: math.Round(duration*100) / 100,
		Tracks:        tracks,
	}
}
