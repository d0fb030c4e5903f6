package preflight

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"phosphor/internal/analysis"
	"phosphor/internal/overlay"
	"phosphor/internal/setlist"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckSetlist loads and validates the setlist. The parsed setlist is
// returned alongside the result so later checks can reuse it.
func CheckSetlist(path string) (Result, *setlist.Setlist) {
	const name = "Setlist"

	sl, err := setlist.Load(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}, nil
	}
	return Result{
		Name:   name,
		Passed: true,
		Detail: fmt.Sprintf("%s (%d songs)", path, len(sl.Songs)),
	}, sl
}

// CheckCatalog validates an overlay catalog override file.
func CheckCatalog(path string) Result {
	const name = "Overlay catalog"

	cat, err := overlay.LoadFile(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	return Result{
		Name:   name,
		Passed: true,
		Detail: fmt.Sprintf("%s (%d overlays)", path, cat.Len()),
	}
}

// CheckAnalysisArtifacts reports how many setlist tracks have an analysis
// artifact on disk. Missing artifacts do not fail the check; those tracks
// are scheduled with a silent profile and the detail names them.
func CheckAnalysisArtifacts(tracksDir string, sl *setlist.Setlist) Result {
	const name = "Analysis artifacts"

	var missing []string
	for _, song := range sl.Songs {
		path := analysis.ArtifactPath(tracksDir, song.TrackID)
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, song.TrackID)
		}
	}

	total := len(sl.Songs)
	if len(missing) == 0 {
		return Result{
			Name:   name,
			Passed: true,
			Detail: fmt.Sprintf("%d/%d tracks analyzed", total, total),
		}
	}
	return Result{
		Name:   name,
		Passed: true,
		Detail: fmt.Sprintf("%d/%d tracks analyzed (missing: %s)", total-len(missing), total, strings.Join(missing, ", ")),
	}
}
