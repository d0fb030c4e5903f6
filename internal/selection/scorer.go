package selection

import (
	"phosphor/internal/overlay"
	"phosphor/internal/profile"
)

const (
	baseScore      = 0.5
	bandMatchBonus = 0.3
	bandClashPenalty = 0.2
	heavyPenalty   = 0.1
	lightBonus     = 0.05
	varietyFactor  = 0.5
	jitterRange    = 0.08
)

// Score rates one catalog entry for a song. Always-active entries score 1
// and never touch the generator; every other entry draws exactly one jitter
// value, so callers must invoke Score in catalog order for reproducibility.
//
// prev holds the previous song's selected names; reuse halves the entire
// accumulated score before jitter.
func Score(entry overlay.Entry, p profile.Profile, prev map[string]struct{}, rng *Rand) float64 {
	if entry.AlwaysActive {
		return 1
	}

	score := baseScore
	score += bandAdjust(entry.EnergyBand, p.DominantBand)
	for _, tag := range entry.Tags {
		score += Affinity(tag, p)
	}

	switch entry.Weight {
	case 3:
		score -= heavyPenalty
	case 1:
		score += lightBonus
	}

	if _, reused := prev[entry.Name]; reused {
		score *= varietyFactor
	}

	score += rng.Next() * jitterRange

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// bandAdjust rewards or penalizes only the extreme-band entries: a low or
// high entry matching the dominant band earns the bonus, the opposite
// extreme takes the penalty. Mid and any entries, and any pairing involving
// mid, stay neutral.
func bandAdjust(band, dominant overlay.Band) float64 {
	switch band {
	case overlay.BandLow:
		if dominant == overlay.BandLow {
			return bandMatchBonus
		}
		if dominant == overlay.BandHigh {
			return -bandClashPenalty
		}
	case overlay.BandHigh:
		if dominant == overlay.BandHigh {
			return bandMatchBonus
		}
		if dominant == overlay.BandLow {
			return -bandClashPenalty
		}
	}
	return 0
}
