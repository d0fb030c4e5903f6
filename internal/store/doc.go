// Package store persists phosphor's bookkeeping in SQLite: a cache of
// per-track audio profiles keyed by the source artifact's size and
// modification time, and a history of schedule runs.
//
// The database lives inside the configured data directory and is opened in
// WAL mode. Writes retry briefly on SQLITE_BUSY so a status query running
// alongside a schedule run does not fail spuriously.
package store
