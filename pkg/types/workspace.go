package types

import (
	"path/filepath"
)

// Manifest filenames and the workspace-protocol version marker.
const (
	// WorkspaceManifestName is the filename of the workspace manifest
	WorkspaceManifestName = "pnpm-workspace.yaml"

	// PackageManifestName is the filename of a package manifest
	PackageManifestName = "package.json"

	// WorkspaceProtocolPrefix marks a version specifier as an
	// intra-workspace reference. The match is exact and case-sensitive.
	WorkspaceProtocolPrefix = "workspace:"
)

// WorkspaceDescriptor describes one discovered workspace manifest.
// Immutable after creation.
type WorkspaceDescriptor struct {
	// ManifestPath is the absolute path to the workspace manifest file
	ManifestPath string

	// Root is the absolute path to the workspace root directory
	Root string

	// Includes are the package-root glob patterns, in manifest order
	Includes []string

	// Excludes are negated patterns from the manifest, stored without
	// the leading "!" marker
	Excludes []string
}

// PackageRecord represents one package found in a workspace
type PackageRecord struct {
	// Name is the manifest-declared package name (validated non-empty)
	Name string

	// Path is the absolute path to the package directory
	Path string

	// RelativePath is the workspace-root-relative path using forward
	// slashes. The root package itself is denoted by "."
	RelativePath string

	// IsRoot reports whether this is the workspace root package
	IsRoot bool
}

// ManifestPath returns the full path to the package's manifest file
func (p *PackageRecord) ManifestPath() string {
	return filepath.Join(p.Path, PackageManifestName)
}

// DependencyEdge is the resolved form of a workspace dependency
// declaration: the dependent package's name and its root-relative path.
type DependencyEdge struct {
	Name         string
	RelativePath string
}

// DependencyClass identifies one of the three dependency maps a
// package manifest may declare.
type DependencyClass string

const (
	ClassProduction  DependencyClass = "dependencies"
	ClassDevelopment DependencyClass = "devDependencies"
	ClassOptional    DependencyClass = "optionalDependencies"
)

// ClassFilter selects which dependency classes the resolver reads.
// The zero value selects nothing; use DefaultClassFilter for the
// all-enabled default.
type ClassFilter struct {
	Production  bool
	Development bool
	Optional    bool
}

// DefaultClassFilter returns the filter with all three classes enabled
func DefaultClassFilter() ClassFilter {
	return ClassFilter{Production: true, Development: true, Optional: true}
}

// Enabled reports whether the given class is selected
func (f ClassFilter) Enabled(class DependencyClass) bool {
	switch class {
	case ClassProduction:
		return f.Production
	case ClassDevelopment:
		return f.Development
	case ClassOptional:
		return f.Optional
	}
	return false
}

// MergeOrder is the fixed precedence in which dependency classes are
// merged: earlier classes win for a dependency name declared in more
// than one map.
var MergeOrder = []DependencyClass{ClassProduction, ClassDevelopment, ClassOptional}
