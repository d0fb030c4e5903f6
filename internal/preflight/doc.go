// Package preflight validates the environment before a schedule run:
// directory permissions, the setlist and catalog files, and the presence of
// per-track analysis artifacts. The status command reports the same checks
// so a failing run can be diagnosed without re-running it.
package preflight
