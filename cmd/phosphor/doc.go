// Command phosphor generates deterministic overlay schedules for concert
// video renders. It reads per-track audio analysis artifacts, derives song
// profiles, and selects which overlay effects run during each song of a
// show.
package main
