package workspace

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/monolens/pkg/logging"
	"github.com/arthur-debert/monolens/pkg/manifest"
	"github.com/arthur-debert/monolens/pkg/types"
)

// Locator finds workspace manifests in a set of open roots
type Locator struct {
	fs       types.FS
	notifier types.Notifier
	excludes []string
	logger   zerolog.Logger
}

// NewLocator creates a locator. The excludes are the same directory
// patterns package discovery uses: a root that is itself one of the
// excluded directories is never treated as a workspace. Ancestors of
// an explicitly opened root are outside the search scope and are not
// consulted.
func NewLocator(fsys types.FS, notifier types.Notifier, excludes []string) *Locator {
	return &Locator{
		fs:       fsys,
		notifier: notifier,
		excludes: excludes,
		logger:   logging.GetLogger("workspace.locator"),
	}
}

// Locate probes each root for a workspace manifest and returns one
// descriptor per parseable manifest. Roots are processed independently:
// a bad manifest degrades that root to zero workspaces and the rest
// continue.
func (l *Locator) Locate(roots []string) []types.WorkspaceDescriptor {
	var descriptors []types.WorkspaceDescriptor

	for _, root := range roots {
		root = filepath.Clean(root)

		if l.excludedRoot(root) {
			l.logger.Debug().Str("root", root).Msg("Root is an excluded directory, skipping")
			continue
		}

		manifestPath := filepath.Join(root, types.WorkspaceManifestName)
		data, err := l.fs.ReadFile(manifestPath)
		if err != nil {
			if os.IsNotExist(err) {
				l.logger.Debug().Str("root", root).Msg("No workspace manifest, root contributes zero packages")
			} else {
				l.logger.Warn().Err(err).Str("path", manifestPath).Msg("Cannot read workspace manifest")
			}
			continue
		}

		patterns, err := manifest.DecodeWorkspace(data)
		if err != nil {
			l.logger.Warn().Err(err).Str("path", manifestPath).Msg("Skipping workspace with bad manifest")
			l.notifier.Error("workspace manifest at " + manifestPath + " could not be used: " + err.Error())
			continue
		}

		descriptors = append(descriptors, types.WorkspaceDescriptor{
			ManifestPath: manifestPath,
			Root:         root,
			Includes:     patterns.Includes,
			Excludes:     patterns.Excludes,
		})

		l.logger.Debug().
			Str("root", root).
			Int("includes", len(patterns.Includes)).
			Int("excludes", len(patterns.Excludes)).
			Msg("Located workspace")
	}

	l.logger.Info().Int("count", len(descriptors)).Msg("Workspace location complete")
	return descriptors
}

// excludedRoot reports whether the root directory itself matches an
// exclude pattern. Only the final path element is checked: the
// directories above an opened root are not part of any search, and a
// host path like /home/build/ws must not be hidden by the "build"
// default exclude.
func (l *Locator) excludedRoot(root string) bool {
	base := filepath.Base(root)
	for _, pattern := range l.excludes {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}
