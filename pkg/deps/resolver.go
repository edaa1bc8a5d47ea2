// Package deps resolves a package's workspace-protocol dependency
// declarations into edges against the package registry.
package deps

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/monolens/pkg/logging"
	"github.com/arthur-debert/monolens/pkg/manifest"
	"github.com/arthur-debert/monolens/pkg/types"
)

// Resolver maps workspace dependency declarations to DependencyEdges
type Resolver struct {
	fs       types.FS
	notifier types.Notifier
	logger   zerolog.Logger
}

// NewResolver creates a dependency resolver
func NewResolver(fsys types.FS, notifier types.Notifier) *Resolver {
	return &Resolver{
		fs:       fsys,
		notifier: notifier,
		logger:   logging.GetLogger("deps.resolver"),
	}
}

// Resolve returns the workspace dependency edges of the named package,
// sorted by dependency name ascending.
//
// The package's manifest is read fresh from disk rather than trusted
// from the cached record, so edits between rebuilds are observed. An
// unknown package name yields an empty result, not an error: callers
// are expected to have taken the name from the registry itself.
func (r *Resolver) Resolve(packageName string, packages []types.PackageRecord, filter types.ClassFilter) []types.DependencyEdge {
	record, ok := lookup(packages, packageName)
	if !ok {
		r.logger.Debug().Str("package", packageName).Msg("Package not in registry, empty result")
		return nil
	}

	m, err := manifest.ReadPackage(r.fs, record.ManifestPath())
	if err != nil {
		r.logger.Warn().Err(err).Str("package", packageName).Msg("Cannot read package manifest for resolution")
		r.notifier.Warn("dependencies of " + packageName + " could not be resolved: " + err.Error())
		return nil
	}

	// Merge enabled classes in fixed precedence; an earlier class owns
	// a dependency name over any later class.
	merged := make(map[string]string)
	for _, class := range types.MergeOrder {
		if !filter.Enabled(class) {
			continue
		}
		for name, spec := range m.ClassMap(class) {
			if _, taken := merged[name]; !taken {
				merged[name] = spec
			}
		}
	}

	var edges []types.DependencyEdge
	for name, spec := range merged {
		if !strings.HasPrefix(spec, types.WorkspaceProtocolPrefix) {
			continue
		}
		target, found := lookup(packages, name)
		if !found {
			// Dangling workspace reference is a soft condition
			r.logger.Warn().
				Str("package", packageName).
				Str("dependency", name).
				Msg("Workspace dependency not present in registry, skipping")
			continue
		}
		edges = append(edges, types.DependencyEdge{
			Name:         target.Name,
			RelativePath: target.RelativePath,
		})
	}

	sort.Slice(edges, func(i, j int) bool { return edges[i].Name < edges[j].Name })

	r.logger.Debug().
		Str("package", packageName).
		Int("edges", len(edges)).
		Msg("Dependency resolution complete")
	return edges
}

// lookup returns the first-seen record with the given name
func lookup(packages []types.PackageRecord, name string) (types.PackageRecord, bool) {
	for _, record := range packages {
		if record.Name == name {
			return record, true
		}
	}
	return types.PackageRecord{}, false
}
