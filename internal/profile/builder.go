package profile

import (
	"math"

	"phosphor/internal/analysis"
	"phosphor/internal/overlay"
)

// peakThreshold is the normalized RMS level above which a frame counts as a
// peak for PeakEnergyRatio.
const peakThreshold = 0.25

// Profile is the per-song feature summary used for overlay scoring.
type Profile struct {
	TrackID string  `json:"trackId"`
	Title   string  `json:"title"`
	Set     int     `json:"set"`

	AvgEnergy       float64      `json:"avgEnergy"`
	EnergyVariance  float64      `json:"energyVariance"`
	DominantBand    overlay.Band `json:"dominantEnergyBand"`
	PeakEnergyRatio float64      `json:"peakEnergyRatio"`
	AvgCentroid     float64      `json:"avgCentroid"`
	AvgFlatness     float64      `json:"avgFlatness"`
	AvgSub          float64      `json:"avgSub"`
	ChromaSpread    float64      `json:"chromaSpread"`
	Tempo           float64      `json:"tempo"`
	SectionCount    int          `json:"sectionCount"`
}

// Build computes a profile from a frame sequence plus track metadata.
//
// An empty frame sequence yields the zero-default profile (dominant band
// "low", all statistics zero). That is a defined fallback for tracks whose
// analysis is unavailable, not an error.
func Build(frames []analysis.Frame, tempo float64, sectionCount int) Profile {
	p := Profile{
		DominantBand: overlay.BandLow,
		Tempo:        tempo,
		SectionCount: sectionCount,
	}
	if len(frames) == 0 {
		return p
	}

	n := float64(len(frames))
	var sumRMS, sumCentroid, sumFlatness, sumSub float64
	var sumLow, sumMid, sumHigh float64
	var chromaSums [12]float64
	peaks := 0

	for _, f := range frames {
		sumRMS += f.RMS
		sumCentroid += f.Centroid
		sumFlatness += f.Flatness
		sumSub += f.Sub
		sumLow += f.Low
		sumMid += f.Mid
		sumHigh += f.High
		for i, v := range f.Chroma {
			chromaSums[i] += v
		}
		if f.RMS > peakThreshold {
			peaks++
		}
	}

	p.AvgEnergy = sumRMS / n
	p.AvgCentroid = sumCentroid / n
	p.AvgFlatness = sumFlatness / n
	p.AvgSub = sumSub / n
	p.PeakEnergyRatio = float64(peaks) / n

	var sqDev float64
	for _, f := range frames {
		d := f.RMS - p.AvgEnergy
		sqDev += d * d
	}
	p.EnergyVariance = sqDev / n

	p.DominantBand = dominantBand(sumLow/n, sumMid/n, sumHigh/n)

	var chromaMeans [12]float64
	var chromaMeanSum float64
	for i, s := range chromaSums {
		chromaMeans[i] = s / n
		chromaMeanSum += chromaMeans[i]
	}
	chromaAvg := chromaMeanSum / 12
	var chromaSqDev float64
	for _, m := range chromaMeans {
		d := m - chromaAvg
		chromaSqDev += d * d
	}
	p.ChromaSpread = math.Sqrt(chromaSqDev / 12)

	return p
}

// dominantBand picks the band with the highest mean. Bands are compared in
// the fixed order low, mid, high and a later band must strictly exceed the
// current best, so exact ties resolve to the earliest band. Reproducibility
// depends on this exact tie-break.
func dominantBand(low, mid, high float64) overlay.Band {
	band := overlay.BandLow
	best := low
	if mid > best {
		band = overlay.BandMid
		best = mid
	}
	if high > best {
		band = overlay.BandHigh
	}
	return band
}
