// Package registry maintains the process-wide package cache: the
// merged PackageRecord list across all discovered workspaces, built
// lazily and cleared by explicit invalidation.
//
// The cache is a single-writer, many-reader snapshot. A rebuild
// replaces the whole slice under the write lock, so readers never see
// a partially populated registry. Concurrent rebuilds are not
// deduplicated; rebuilds are infrequent and the last writer wins.
package registry

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/monolens/pkg/logging"
	"github.com/arthur-debert/monolens/pkg/scan"
	"github.com/arthur-debert/monolens/pkg/types"
	"github.com/arthur-debert/monolens/pkg/workspace"
)

// Registry caches the package records of a set of workspace roots
type Registry struct {
	fs       types.FS
	notifier types.Notifier
	roots    []string
	excludes []string
	logger   zerolog.Logger

	mu       sync.RWMutex
	packages []types.PackageRecord
	built    bool
}

// New creates a registry over the given workspace roots. The excludes
// are shared by workspace location and package discovery.
func New(fsys types.FS, notifier types.Notifier, roots, excludes []string) *Registry {
	return &Registry{
		fs:       fsys,
		notifier: notifier,
		roots:    roots,
		excludes: excludes,
		logger:   logging.GetLogger("registry"),
	}
}

// Get returns the cached package records, rebuilding them first if the
// cache is empty or was invalidated. The returned slice is the live
// snapshot; callers must not mutate it.
func (r *Registry) Get() []types.PackageRecord {
	r.mu.RLock()
	if r.built {
		packages := r.packages
		r.mu.RUnlock()
		return packages
	}
	r.mu.RUnlock()

	// Rebuild outside the lock; simultaneous callers may both rebuild
	// and the last snapshot stored wins.
	packages := r.rebuild()

	r.mu.Lock()
	r.packages = packages
	r.built = true
	r.mu.Unlock()

	return packages
}

// Invalidate clears the cache; the next Get rebuilds it
func (r *Registry) Invalidate() {
	r.mu.Lock()
	r.packages = nil
	r.built = false
	r.mu.Unlock()

	r.logger.Debug().Msg("Registry invalidated")
}

// Lookup returns the first-seen record with the given name
func (r *Registry) Lookup(name string) (types.PackageRecord, bool) {
	for _, record := range r.Get() {
		if record.Name == name {
			return record, true
		}
	}
	return types.PackageRecord{}, false
}

// rebuild runs workspace location and package discovery over all roots
func (r *Registry) rebuild() []types.PackageRecord {
	done := logging.LogOperationStart(r.logger, "registry.rebuild")
	defer done()

	roots := make([]string, len(r.roots))
	copy(roots, r.roots)
	sort.Strings(roots)

	locator := workspace.NewLocator(r.fs, r.notifier, r.excludes)
	scanner := scan.NewScanner(r.fs, r.notifier)

	var packages []types.PackageRecord
	seen := make(map[string]string)

	for _, ws := range locator.Locate(roots) {
		for _, manifestPath := range scanner.Discover(ws, r.excludes) {
			record := scanner.Load(manifestPath, ws)
			if record == nil {
				continue
			}

			if firstPath, dup := seen[record.Name]; dup {
				// First-seen wins; later conflicting records are dropped
				r.logger.Warn().
					Str("name", record.Name).
					Str("kept", firstPath).
					Str("dropped", record.Path).
					Msg("Duplicate package name across workspaces")
				r.notifier.Warn("duplicate package name " + record.Name + ", keeping " + firstPath)
				continue
			}

			seen[record.Name] = record.Path
			packages = append(packages, *record)
		}
	}

	r.logger.Info().Int("count", len(packages)).Msg("Registry rebuilt")
	return packages
}
