// Package profile reduces a track's frame-level analysis into the fixed-size
// statistical summary consumed by overlay scoring.
//
// A profile is derived once per song and immutable afterwards. Every
// statistic is a plain arithmetic reduction so that identical analysis input
// produces a bit-identical profile on every machine; selection determinism
// depends on it.
package profile
