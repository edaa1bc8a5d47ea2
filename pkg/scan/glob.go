package scan

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/monolens/pkg/logging"
	"github.com/arthur-debert/monolens/pkg/types"
)

// GlobFinder is the primary discovery strategy: all include patterns
// are combined into one brace-alternation glob, suffixed with the
// manifest filename, and matched in a single query.
//
// On some non-local filesystems the glob walk silently produces zero
// results even when matching files exist. That is a platform
// limitation, not a failure; the scanner handles it by falling back
// to WalkFinder.
type GlobFinder struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewGlobFinder creates the glob-based finder
func NewGlobFinder(fsys types.FS) *GlobFinder {
	return &GlobFinder{
		fs:     fsys,
		logger: logging.GetLogger("scan.glob"),
	}
}

// Find implements Finder
func (g *GlobFinder) Find(root string, includes, excludes []string) ([]string, error) {
	if len(includes) == 0 {
		return nil, nil
	}

	pattern := combinePatterns(includes)
	g.logger.Debug().Str("root", root).Str("pattern", pattern).Msg("Running glob search")

	matches, err := doublestar.Glob(newIOFS(g.fs, root), pattern)
	if err != nil {
		return nil, err
	}

	var found []string
	for _, match := range matches {
		dir := path.Dir(match)
		if matchesExclude(dir, excludes) {
			g.logger.Trace().Str("path", match).Msg("Match rejected by exclude set")
			continue
		}
		found = append(found, filepath.Join(root, filepath.FromSlash(match)))
	}

	g.logger.Debug().Int("count", len(found)).Msg("Glob search complete")
	return found, nil
}

// combinePatterns builds the single combined glob: each include
// pattern suffixed with the manifest filename, brace-alternated when
// there is more than one.
func combinePatterns(includes []string) string {
	if len(includes) == 1 {
		return path.Join(includes[0], types.PackageManifestName)
	}
	cleaned := make([]string, 0, len(includes))
	for _, include := range includes {
		cleaned = append(cleaned, strings.TrimSuffix(include, "/"))
	}
	return "{" + strings.Join(cleaned, ",") + "}/" + types.PackageManifestName
}
