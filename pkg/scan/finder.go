package scan

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Finder discovers package-manifest paths under a root for a set of
// include patterns, honoring the exclude set.
type Finder interface {
	// Find returns absolute paths of package manifests matching the
	// include patterns. A nil result with a nil error means the
	// strategy found nothing, which callers may treat as recoverable.
	Find(root string, includes, excludes []string) ([]string, error)
}

// matchesExclude reports whether the workspace-relative path of a
// candidate directory hits the exclude set. Patterns without a slash
// are directory-name fragments matched against each segment; patterns
// with a slash are matched against the whole relative path, including
// everything beneath it.
func matchesExclude(relPath string, excludes []string) bool {
	relPath = path.Clean(relPath)
	segments := strings.Split(relPath, "/")

	for _, pattern := range excludes {
		if pattern == "" {
			continue
		}
		if strings.Contains(pattern, "/") {
			if ok, _ := doublestar.Match(pattern, relPath); ok {
				return true
			}
			if ok, _ := doublestar.Match(pattern+"/**", relPath); ok {
				return true
			}
			continue
		}
		for _, segment := range segments {
			if ok, _ := path.Match(pattern, segment); ok {
				return true
			}
		}
	}
	return false
}
