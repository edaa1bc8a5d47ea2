// Package types defines the core data model shared across monolens:
// workspace descriptors, package records, dependency edges, and the
// collaborator interfaces (filesystem, notifier) the core depends on.
//
// Keeping these in a leaf package avoids import cycles between the
// locator, scanner, registry, and resolver packages.
package types
