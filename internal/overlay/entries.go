package overlay

// defaultEntries is the built-in overlay table. Entry order matters: it is
// the stable tie-break order during scoring, so new effects go at the end of
// their layer block.
//
// Layer roles:
//
//	1  background washes     6  light effects
//	2  texture fields        7  iconography
//	3  particle systems      8  signage and framing
//	4  geometric forms       9  camera kinetics
//	5  organic motion       10  color grading
var defaultEntries = []Entry{
	// Layer 1: background washes
	{Name: "auroraWash", Layer: 1, Weight: 2, EnergyBand: BandLow, Tags: []string{"cosmic", "contemplative"}},
	{Name: "nebulaDrift", Layer: 1, Weight: 2, EnergyBand: BandLow, Tags: []string{"cosmic", "psychedelic"}},
	{Name: "duskGradient", Layer: 1, Weight: 1, EnergyBand: BandAny, Tags: []string{"contemplative", "retro"}},
	{Name: "emberGlow", Layer: 1, Weight: 2, EnergyBand: BandMid, Tags: []string{"organic", "festival"}},
	{Name: "deepSeaFade", Layer: 1, Weight: 2, EnergyBand: BandLow, Tags: []string{"aquatic", "contemplative"}},
	{Name: "violetHaze", Layer: 1, Weight: 1, EnergyBand: BandHigh, Tags: []string{"psychedelic", "intense"}},

	// Layer 2: texture fields
	{Name: "grainBase", Layer: 2, Weight: 1, EnergyBand: BandAny, Tags: []string{"retro"}},
	{Name: "dustMotes", Layer: 2, Weight: 1, EnergyBand: BandLow, Tags: []string{"organic", "contemplative"}},
	{Name: "paperFibers", Layer: 2, Weight: 1, EnergyBand: BandAny, Tags: []string{"retro", "organic"}},
	{Name: "staticVeil", Layer: 2, Weight: 2, EnergyBand: BandHigh, Tags: []string{"mechanical", "intense"}},
	{Name: "canvasWeave", Layer: 2, Weight: 1, EnergyBand: BandMid, Tags: []string{"retro"}},

	// Layer 3: particle systems
	{Name: "fireflySwarm", Layer: 3, Weight: 2, EnergyBand: BandLow, Tags: []string{"organic", "contemplative"}},
	{Name: "stardustRain", Layer: 3, Weight: 2, EnergyBand: BandMid, Tags: []string{"cosmic"}},
	{Name: "pollenDrift", Layer: 3, Weight: 1, EnergyBand: BandLow, Tags: []string{"organic"}},
	{Name: "bubbleStream", Layer: 3, Weight: 2, EnergyBand: BandMid, Tags: []string{"aquatic", "psychedelic"}},
	{Name: "snowfallSlow", Layer: 3, Weight: 1, EnergyBand: BandLow, Tags: []string{"contemplative"}},
	{Name: "sparkShower", Layer: 3, Weight: 3, EnergyBand: BandHigh, Tags: []string{"intense", "festival"}},

	// Layer 4: geometric forms
	{Name: "sacredGeometry", Layer: 4, Weight: 3, EnergyBand: BandMid, Tags: []string{"cosmic", "psychedelic"}},
	{Name: "latticeSpin", Layer: 4, Weight: 2, EnergyBand: BandHigh, Tags: []string{"mechanical", "psychedelic"}},
	{Name: "prismFacets", Layer: 4, Weight: 2, EnergyBand: BandHigh, Tags: []string{"cosmic", "intense"}},
	{Name: "orbitRings", Layer: 4, Weight: 2, EnergyBand: BandAny, Tags: []string{"cosmic", "mechanical"}},
	{Name: "hexBloom", Layer: 4, Weight: 1, EnergyBand: BandMid, Tags: []string{"psychedelic"}},

	// Layer 5: organic motion
	{Name: "zenRipples", Layer: 5, Weight: 2, EnergyBand: BandLow, Tags: []string{"aquatic", "contemplative"}},
	{Name: "lavaLamp", Layer: 5, Weight: 2, EnergyBand: BandLow, Tags: []string{"psychedelic", "retro"}},
	{Name: "inkBloom", Layer: 5, Weight: 2, EnergyBand: BandMid, Tags: []string{"aquatic", "psychedelic"}},
	{Name: "kelpSway", Layer: 5, Weight: 1, EnergyBand: BandLow, Tags: []string{"aquatic", "organic"}},
	{Name: "smokeCurls", Layer: 5, Weight: 2, EnergyBand: BandLow, Tags: []string{"organic", "contemplative"}},
	{Name: "vineCrawl", Layer: 5, Weight: 2, EnergyBand: BandMid, Tags: []string{"organic"}},
	{Name: "meltingWax", Layer: 5, Weight: 3, EnergyBand: BandMid, Tags: []string{"psychedelic", "retro"}},

	// Layer 6: light effects
	{Name: "stageGlow", Layer: 6, Weight: 1, EnergyBand: BandAny, Tags: []string{"festival"}},
	{Name: "lensFlares", Layer: 6, Weight: 2, EnergyBand: BandHigh, Tags: []string{"festival", "intense"}},
	{Name: "strobePulse", Layer: 6, Weight: 3, EnergyBand: BandHigh, Tags: []string{"intense", "mechanical"}},
	{Name: "searchBeams", Layer: 6, Weight: 2, EnergyBand: BandHigh, Tags: []string{"festival", "intense"}},
	{Name: "glowWorms", Layer: 6, Weight: 1, EnergyBand: BandLow, Tags: []string{"organic", "psychedelic"}},
	{Name: "haloBloom", Layer: 6, Weight: 2, EnergyBand: BandMid, Tags: []string{"cosmic", "contemplative"}},

	// Layer 7: iconography
	{Name: "dancingBears", Layer: 7, Weight: 2, EnergyBand: BandMid, Tags: []string{"dead-culture", "festival"}},
	{Name: "stealYourFace", Layer: 7, Weight: 2, EnergyBand: BandHigh, Tags: []string{"dead-culture", "intense"}},
	{Name: "terrapinShadow", Layer: 7, Weight: 2, EnergyBand: BandLow, Tags: []string{"dead-culture", "contemplative"}},
	{Name: "roseGarland", Layer: 7, Weight: 1, EnergyBand: BandMid, Tags: []string{"dead-culture", "organic"}},
	{Name: "lightningBolt", Layer: 7, Weight: 2, EnergyBand: BandHigh, Tags: []string{"dead-culture", "intense"}},

	// Layer 8: signage and framing
	{Name: "neonSign", Layer: 8, Weight: 2, EnergyBand: BandMid, Tags: []string{"retro", "festival"}},
	{Name: "marqueeFrame", Layer: 8, Weight: 2, EnergyBand: BandAny, Tags: []string{"retro", "dead-culture"}},
	{Name: "ticketStub", Layer: 8, Weight: 1, EnergyBand: BandAny, Tags: []string{"retro"}},

	// Layer 9: camera kinetics
	{Name: "slowZoomDrift", Layer: 9, Weight: 1, EnergyBand: BandLow, Tags: []string{"contemplative"}},
	{Name: "parallaxTilt", Layer: 9, Weight: 2, EnergyBand: BandMid, Tags: []string{"mechanical"}},
	{Name: "heatShimmer", Layer: 9, Weight: 2, EnergyBand: BandHigh, Tags: []string{"intense", "psychedelic"}},

	// Layer 10: color grading
	{Name: "sepiaDrape", Layer: 10, Weight: 1, EnergyBand: BandLow, Tags: []string{"retro", "contemplative"}},
	{Name: "chromaShift", Layer: 10, Weight: 2, EnergyBand: BandHigh, Tags: []string{"psychedelic", "intense"}},
	{Name: "vhsBleed", Layer: 10, Weight: 1, EnergyBand: BandAny, Tags: []string{"retro"}},
}

// defaultAlwaysActive lists effects that render for every song regardless of
// scoring: the base film grain, the house light wash, and the edge vignette.
var defaultAlwaysActive = []string{"grainBase", "stageGlow", "vhsBleed"}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	cat, err := New(defaultEntries, defaultAlwaysActive)
	if err != nil {
		// The built-in table is validated by tests; reaching this is a bug.
		panic(err)
	}
	return cat
}
