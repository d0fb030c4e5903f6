package selection

import (
	"sort"

	"phosphor/internal/overlay"
	"phosphor/internal/profile"
)

// MaxTotalWeight is the global visual-cost budget. It is a soft ceiling:
// greedy selection stops adding once reached, but force-backfill may exceed
// it to satisfy a layer minimum. That asymmetry is intentional and must not
// be "fixed".
const MaxTotalWeight = 60

// layerBounds holds the per-layer (min, max) selection targets.
var layerBounds = map[int]struct{ min, max int }{
	1:  {3, 6},
	2:  {2, 5},
	3:  {3, 6},
	4:  {2, 5},
	5:  {3, 7},
	6:  {2, 5},
	7:  {2, 5},
	8:  {1, 3},
	9:  {1, 3},
	10: {1, 3},
}

// LayerBounds returns the (min, max) targets for a layer.
func LayerBounds(layer int) (min, max int) {
	b := layerBounds[layer]
	return b.min, b.max
}

// Overrides are per-song adjustments from the setlist.
//
// TargetCount is part of the override contract but is never consumed by the
// allocator; it is carried for contract fidelity only.
type Overrides struct {
	Include     []string `json:"include,omitempty"`
	Exclude     []string `json:"exclude,omitempty"`
	TargetCount int      `json:"targetCount,omitempty"`
}

// Result is one song's final selection. ActiveOverlays preserves insertion
// order; TotalWeight sums the weights of exactly those names.
type Result struct {
	ActiveOverlays []string `json:"activeOverlays"`
	TotalCount     int      `json:"totalCount"`
	TotalWeight    int      `json:"totalWeight"`
}

// Names returns the selection as a membership set, the shape the next
// song's variety penalty consumes.
func (r Result) Names() map[string]struct{} {
	set := make(map[string]struct{}, len(r.ActiveOverlays))
	for _, name := range r.ActiveOverlays {
		set[name] = struct{}{}
	}
	return set
}

// scoredOverlay pairs an entry with its score for one selection call.
type scoredOverlay struct {
	entry overlay.Entry
	score float64
}

// Select runs the full allocation for one song.
//
// Always-active entries and override includes land first, then layers 1-10
// fill greedily by descending score under the weight budget, with
// force-backfill ignoring the budget to reach each layer's minimum. A layer
// with fewer eligible candidates than its minimum is left short; that is a
// documented shortfall, not an error. Exclusions are applied last and win
// over includes.
func Select(cat *overlay.Catalog, p profile.Profile, prev map[string]struct{}, ov *Overrides, showSeed int64) Result {
	rng := NewRand(SeedFor(p.TrackID, showSeed))

	// Score every competitive entry up front, in catalog order, so the
	// jitter stream is identical no matter which overrides are in play.
	scored := make([]scoredOverlay, 0, cat.Len())
	for _, entry := range cat.Entries() {
		if entry.AlwaysActive {
			continue
		}
		scored = append(scored, scoredOverlay{entry: entry, score: Score(entry, p, prev, rng)})
	}

	var selected []string
	member := make(map[string]struct{})
	totalWeight := 0
	add := func(entry overlay.Entry) bool {
		if _, ok := member[entry.Name]; ok {
			return false
		}
		member[entry.Name] = struct{}{}
		selected = append(selected, entry.Name)
		totalWeight += entry.Weight
		return true
	}

	for _, entry := range cat.AlwaysActive() {
		add(entry)
	}

	if ov != nil {
		for _, name := range ov.Include {
			if entry, ok := cat.Lookup(name); ok {
				add(entry)
			}
		}
	}

	exclude := make(map[string]struct{})
	if ov != nil {
		for _, name := range ov.Exclude {
			exclude[name] = struct{}{}
		}
	}

	for layer := 1; layer <= 10; layer++ {
		bounds := layerBounds[layer]

		var candidates []scoredOverlay
		for _, s := range scored {
			if s.entry.Layer != layer {
				continue
			}
			if _, excluded := exclude[s.entry.Name]; excluded {
				continue
			}
			candidates = append(candidates, s)
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].score > candidates[j].score
		})

		layerCount := 0
		for _, name := range selected {
			if entry, ok := cat.Lookup(name); ok && entry.Layer == layer {
				layerCount++
			}
		}

		// Greedy phase, bounded by the layer max and the weight budget.
		i := 0
		for ; i < len(candidates); i++ {
			if layerCount >= bounds.max || totalWeight >= MaxTotalWeight {
				break
			}
			if add(candidates[i].entry) {
				layerCount++
			}
		}

		// Force-backfill: the weight budget no longer applies.
		for ; i < len(candidates) && layerCount < bounds.min; i++ {
			if add(candidates[i].entry) {
				layerCount++
			}
		}
	}

	// Exclusion wins over inclusion, even for names forced in above.
	if len(exclude) > 0 {
		kept := selected[:0]
		for _, name := range selected {
			if _, excluded := exclude[name]; excluded {
				continue
			}
			kept = append(kept, name)
		}
		selected = kept
	}

	finalWeight := 0
	for _, name := range selected {
		if entry, ok := cat.Lookup(name); ok {
			finalWeight += entry.Weight
		}
	}

	return Result{
		ActiveOverlays: selected,
		TotalCount:     len(selected),
		TotalWeight:    finalWeight,
	}
}
