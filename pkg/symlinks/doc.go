// Package symlinks resolves symbolic-link chains from an installed
// location back to its authoritative source location.
//
// Resolution is an explicit iterative walk with a per-call visited
// set, so cycle detection and error propagation stay uniform and the
// stack depth is bounded regardless of chain length. On filesystems
// without lstat/readlink primitives every operation reports
// UNSUPPORTED_ENV instead of returning silently wrong results.
package symlinks
