// Package filesystem provides implementations of the types.FS
// interface: a direct OS-backed implementation and an afero-backed one
// for tests and virtual filesystems.
//
// The package also hosts the capability probe (IsLocal) the scanner
// uses to pick between its glob and walk discovery strategies.
package filesystem
