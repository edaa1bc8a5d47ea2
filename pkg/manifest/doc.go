// Package manifest reads and validates the two manifest kinds monolens
// understands: the workspace manifest (pnpm-workspace.yaml) and the
// package manifest (package.json).
//
// Parsing and schema validation are distinct failure modes with
// distinct error codes, so callers can degrade a single malformed file
// without losing the distinction in diagnostics.
package manifest
