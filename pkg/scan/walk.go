package scan

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/monolens/pkg/logging"
	"github.com/arthur-debert/monolens/pkg/paths"
	"github.com/arthur-debert/monolens/pkg/types"
)

// WalkFinder is the fallback discovery strategy: each include
// pattern's directory segments are expanded one level at a time
// against real directory listings. A wildcard segment expands to the
// non-excluded subdirectories of the current level; a literal segment
// is a direct existence check. Excluded directories are never entered.
type WalkFinder struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewWalkFinder creates the walk-based finder
func NewWalkFinder(fsys types.FS) *WalkFinder {
	return &WalkFinder{
		fs:     fsys,
		logger: logging.GetLogger("scan.walk"),
	}
}

// Find implements Finder
func (w *WalkFinder) Find(root string, includes, excludes []string) ([]string, error) {
	var found []string

	for _, include := range includes {
		segments := strings.Split(strings.Trim(include, "/"), "/")
		dirs := w.expand(root, segments, excludes)

		for _, dir := range dirs {
			manifestPath := filepath.Join(dir, types.PackageManifestName)
			info, err := w.fs.Stat(manifestPath)
			if err != nil || info.IsDir() {
				continue
			}
			found = append(found, manifestPath)
		}
	}

	w.logger.Debug().Str("root", root).Int("count", len(found)).Msg("Walk search complete")
	return found, nil
}

// expand resolves one pattern's segments level by level, returning the
// concrete directories the fully-expanded pattern denotes.
func (w *WalkFinder) expand(root string, segments, excludes []string) []string {
	dirs := []string{root}

	for _, segment := range segments {
		if segment == "" || segment == "." {
			continue
		}

		var next []string
		for _, dir := range dirs {
			if strings.Contains(segment, "*") {
				next = append(next, w.expandWildcard(root, dir, segment, excludes)...)
				continue
			}

			candidate := filepath.Join(dir, segment)
			if matchesExclude(paths.RelativeTo(root, candidate), excludes) {
				continue
			}
			if info, err := w.fs.Stat(candidate); err == nil && info.IsDir() {
				next = append(next, candidate)
			}
		}
		dirs = next

		if len(dirs) == 0 {
			break
		}
	}

	return dirs
}

// expandWildcard lists dir and keeps subdirectories matching the
// wildcard segment, minus the exclude set.
func (w *WalkFinder) expandWildcard(root, dir, segment string, excludes []string) []string {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		w.logger.Trace().Err(err).Str("dir", dir).Msg("Cannot list directory during walk")
		return nil
	}

	var matched []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(segment, entry.Name()); !ok {
			continue
		}
		candidate := filepath.Join(dir, entry.Name())
		if matchesExclude(paths.RelativeTo(root, candidate), excludes) {
			w.logger.Trace().Str("dir", candidate).Msg("Excluded directory not traversed")
			continue
		}
		matched = append(matched, candidate)
	}
	return matched
}
