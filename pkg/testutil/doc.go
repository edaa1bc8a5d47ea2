// Package testutil provides test infrastructure for monolens: an
// in-memory filesystem with real symlink nodes and error injection,
// plus helpers for building workspace fixtures.
package testutil
