package selection

import (
	"math"

	"phosphor/internal/profile"
)

// affinityCap bounds any single tag's score contribution.
const affinityCap = 0.15

// Affinity maps a mood tag and a song profile to a contribution in
// [0, 0.15]. Unknown tags contribute nothing.
func Affinity(tag string, p profile.Profile) float64 {
	var raw float64
	switch tag {
	case "cosmic":
		raw = (0.5*p.AvgCentroid + 0.5*p.ChromaSpread) * affinityCap
	case "organic":
		raw = (0.3*(1-min(p.Tempo/200, 1)) +
			0.3*(1-math.Abs(p.AvgEnergy-0.15)*4) +
			0.4*p.AvgSub) * affinityCap
	case "mechanical":
		raw = (0.6*min(p.Tempo/160, 1) + 0.4*p.PeakEnergyRatio) * affinityCap
	case "psychedelic":
		raw = (0.5*p.AvgFlatness + 0.5*min(p.EnergyVariance*10, 1)) * affinityCap
	case "festival":
		secondSet := 0.0
		if p.Set == 2 {
			secondSet = 1
		}
		raw = (0.6*min(p.AvgEnergy*3, 1) + 0.4*secondSet) * affinityCap
	case "contemplative":
		raw = (0.5*(1-p.AvgEnergy*3) + 0.5*(1-min(p.Tempo/160, 1))) * affinityCap
	case "dead-culture":
		raw = 0.08
	case "intense":
		raw = p.PeakEnergyRatio * affinityCap
	case "retro":
		raw = 0.05
	case "aquatic":
		raw = (0.6*p.AvgSub + 0.4*(1-math.Abs(p.AvgEnergy-0.12)*5)) * affinityCap
	default:
		return 0
	}

	if raw < 0 {
		return 0
	}
	if raw > affinityCap {
		return affinityCap
	}
	return raw
}
