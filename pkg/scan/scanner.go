package scan

import (
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/monolens/pkg/filesystem"
	"github.com/arthur-debert/monolens/pkg/logging"
	"github.com/arthur-debert/monolens/pkg/manifest"
	"github.com/arthur-debert/monolens/pkg/paths"
	"github.com/arthur-debert/monolens/pkg/types"
)

// Scanner expands a workspace's package patterns into package records.
// The glob strategy runs first; the manual walk only runs when the
// glob found nothing and the filesystem is not a conventional local
// one (where an empty glob result is authoritative).
type Scanner struct {
	fs       types.FS
	notifier types.Notifier
	primary  Finder
	fallback Finder
	logger   zerolog.Logger
}

// NewScanner creates a scanner with the default strategy pair
func NewScanner(fsys types.FS, notifier types.Notifier) *Scanner {
	return &Scanner{
		fs:       fsys,
		notifier: notifier,
		primary:  NewGlobFinder(fsys),
		fallback: NewWalkFinder(fsys),
		logger:   logging.GetLogger("scan.scanner"),
	}
}

// NewScannerWithFinders creates a scanner with explicit strategies.
// Used by tests to force a particular discovery path.
func NewScannerWithFinders(fsys types.FS, notifier types.Notifier, primary, fallback Finder) *Scanner {
	return &Scanner{
		fs:       fsys,
		notifier: notifier,
		primary:  primary,
		fallback: fallback,
		logger:   logging.GetLogger("scan.scanner"),
	}
}

// Discover returns the manifest paths of all packages in the
// workspace: the root package manifest (when present) plus every
// pattern match, deduplicated and sorted.
func (s *Scanner) Discover(ws types.WorkspaceDescriptor, extraExcludes []string) []string {
	excludes := make([]string, 0, len(ws.Excludes)+len(extraExcludes))
	excludes = append(excludes, extraExcludes...)
	excludes = append(excludes, ws.Excludes...)

	found, err := s.primary.Find(ws.Root, ws.Includes, excludes)
	if err != nil {
		s.logger.Warn().Err(err).Str("root", ws.Root).Msg("Glob search failed, treating as empty")
		found = nil
	}

	if len(found) == 0 && len(ws.Includes) > 0 && !filesystem.IsLocal(s.fs) {
		s.logger.Info().Str("root", ws.Root).Msg("Glob search empty on non-local filesystem, using walk fallback")
		found, err = s.fallback.Find(ws.Root, ws.Includes, excludes)
		if err != nil {
			s.logger.Warn().Err(err).Str("root", ws.Root).Msg("Walk fallback failed")
			found = nil
		}
	}

	// The root package participates regardless of patterns
	rootManifest := filepath.Join(ws.Root, types.PackageManifestName)
	if info, err := s.fs.Stat(rootManifest); err == nil && !info.IsDir() {
		found = append([]string{rootManifest}, found...)
	}

	// Dedupe by canonical location identity
	seen := make(map[string]bool, len(found))
	unique := found[:0]
	for _, p := range found {
		clean := filepath.Clean(p)
		if seen[clean] {
			continue
		}
		seen[clean] = true
		unique = append(unique, clean)
	}
	sort.Strings(unique)

	s.logger.Info().Str("root", ws.Root).Int("count", len(unique)).Msg("Package discovery complete")
	return unique
}

// Load reads and validates one package manifest into a PackageRecord.
// A malformed or schema-invalid manifest yields nil: it is logged and
// notified once, and never aborts the overall scan.
func (s *Scanner) Load(manifestPath string, ws types.WorkspaceDescriptor) *types.PackageRecord {
	m, err := manifest.ReadPackage(s.fs, manifestPath)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", manifestPath).Msg("Skipping unloadable package manifest")
		s.notifier.Warn("package manifest at " + manifestPath + " was skipped: " + err.Error())
		return nil
	}

	dir := filepath.Dir(manifestPath)
	rel := paths.RelativeTo(ws.Root, dir)

	return &types.PackageRecord{
		Name:         m.Name,
		Path:         dir,
		RelativePath: rel,
		IsRoot:       rel == ".",
	}
}
