// Package selection implements the deterministic overlay-selection engine:
// tag-affinity scoring, per-overlay candidate scoring, and the constrained
// layer allocation that picks which effects run for one song.
//
// Determinism is the load-bearing property. Scores carry a small jitter from
// a Park-Miller generator seeded by hash(trackID)+showSeed, every
// non-always-active entry draws exactly once in catalog order, and all ties
// break by catalog position, so the same inputs reproduce byte-identical
// selections across runs and machines.
//
// The package is pure: no I/O, no clocks, no shared state. Each call owns
// its generator, so concurrent selections for different songs are safe.
package selection
