package preflight

import (
	"phosphor/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
		CheckDirectoryAccess("Tracks directory", cfg.Paths.TracksDir),
	}

	setlistResult, sl := CheckSetlist(cfg.Paths.SetlistPath)
	results = append(results, setlistResult)

	if cfg.Paths.CatalogPath != "" {
		results = append(results, CheckCatalog(cfg.Paths.CatalogPath))
	}

	if sl != nil {
		results = append(results, CheckAnalysisArtifacts(cfg.Paths.TracksDir, sl))
	}

	return results
}
