package analysis

// Frame is one 30fps analysis frame. All scalar features are normalized to
// the 0-1 range by the analyzer.
type Frame struct {
	RMS      float64    `json:"rms"`
	Centroid float64    `json:"centroid"`
	Onset    float64    `json:"onset"`
	Beat     bool       `json:"beat"`
	Sub      float64    `json:"sub"`
	Low      float64    `json:"low"`
	Mid      float64    `json:"mid"`
	High     float64    `json:"high"`
	Chroma   [12]float64 `json:"chroma"`
	Contrast []float64  `json:"contrast,omitempty"`
	Flatness float64    `json:"flatness"`
}

// Section is one detected song section with its coarse energy label.
type Section struct {
	FrameStart int     `json:"frameStart"`
	FrameEnd   int     `json:"frameEnd"`
	Label      string  `json:"label"`
	Energy     string  `json:"energy"`
	AvgEnergy  float64 `json:"avgEnergy"`
}

// Meta carries track-level analysis metadata.
type Meta struct {
	Source      string    `json:"source"`
	Duration    float64   `json:"duration"`
	FPS         int       `json:"fps"`
	SampleRate  int       `json:"sr"`
	HopLength   int       `json:"hopLength"`
	TotalFrames int       `json:"totalFrames"`
	Tempo       float64   `json:"tempo"`
	Sections    []Section `json:"sections"`
}

// TrackAnalysis is the full per-track artifact.
type TrackAnalysis struct {
	Meta   Meta    `json:"meta"`
	Frames []Frame `json:"frames"`
}
