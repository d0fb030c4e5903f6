// Package overlay defines the static catalog of ambient visual overlay
// effects that the selection engine chooses from.
//
// Each entry names an effect, the layer (1-10) it renders in, its visual
// cost (weight 1-3), the energy band it suits, and the mood tags used for
// affinity scoring. A small set of entries is flagged always-active and
// bypasses competitive selection entirely.
//
// The catalog is immutable reference data: it is either the compiled-in
// default table or loaded once from a JSON file at startup, validated, and
// never mutated afterwards. Overlay names are globally unique; downstream
// artifacts refer to effects by name only.
package overlay
