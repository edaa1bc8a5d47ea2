package types

import (
	"io/fs"
)

// FS is the read-only filesystem surface the core operates on.
// Implementations exist for the OS filesystem and for afero-backed
// filesystems (tests, virtual hosts).
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations. Implementations that cannot inspect links
	// return an UNSUPPORTED_ENV coded error rather than guessing.
	Lstat(name string) (fs.FileInfo, error)
	Readlink(name string) (string, error)
}

// Localer is an optional FS capability: implementations report whether
// they are backed by a conventional local filesystem. The scanner uses
// this to decide whether the manual walk fallback is worth attempting
// when the glob search comes back empty.
type Localer interface {
	IsLocal() bool
}

// Notifier delivers short user-facing diagnostics. The CLI wires a
// console implementation; library callers may pass a no-op.
type Notifier interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Info(msg string)  {}
func (NopNotifier) Warn(msg string)  {}
func (NopNotifier) Error(msg string) {}
