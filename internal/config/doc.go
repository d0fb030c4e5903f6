// Package config loads and validates phosphor's TOML configuration.
//
// Configuration follows a fixed pipeline: start from repository defaults,
// overlay the config file if present, normalize (tilde expansion, trimming,
// deriving unset paths from the data directory), then validate. Commands
// receive a fully resolved Config and never re-derive paths themselves.
package config
