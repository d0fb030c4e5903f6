// Package schedule folds per-song overlay selections across a show and
// produces the show-level schedule artifact consumed by the renderer.
//
// The fold is strictly sequential: song i's scoring takes song i-1's
// selection as its variety-penalty input, so processing order is the setlist
// order and must never be parallelized or reordered.
package schedule
