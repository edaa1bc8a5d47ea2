package filesystem

import (
	"github.com/arthur-debert/monolens/pkg/types"
)

// IsLocal reports whether the filesystem is a conventional local
// filesystem. Implementations advertise this through the optional
// types.Localer capability; filesystems that don't are assumed
// non-local, which keeps the scanner's walk fallback available.
func IsLocal(fsys types.FS) bool {
	if l, ok := fsys.(types.Localer); ok {
		return l.IsLocal()
	}
	return false
}
