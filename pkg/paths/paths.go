// Package paths provides path helpers shared by the locator, scanner,
// and resolvers: root-relative path computation with forward-slash
// normalization, and basic path validation.
package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/monolens/pkg/errors"
)

// RelativeTo computes the path of target relative to root, normalized
// to forward slashes regardless of the host separator. A target equal
// to root yields ".".
//
// Some execution environments have been seen to return an absolute
// path from filepath.Rel for URI-derived inputs; when that happens the
// relative path is recomputed manually by prefix-stripping.
func RelativeTo(root, target string) string {
	root = filepath.Clean(root)
	target = filepath.Clean(target)

	rel, err := filepath.Rel(root, target)
	if err == nil && !filepath.IsAbs(rel) {
		return filepath.ToSlash(rel)
	}

	return manualRelative(root, target)
}

// manualRelative strips root from target by string prefix. Used when
// filepath.Rel misbehaves; best effort only.
func manualRelative(root, target string) string {
	rootSlash := filepath.ToSlash(root)
	targetSlash := filepath.ToSlash(target)

	if targetSlash == rootSlash {
		return "."
	}
	if strings.HasPrefix(targetSlash, rootSlash+"/") {
		return strings.TrimPrefix(targetSlash, rootSlash+"/")
	}
	return targetSlash
}

// ValidatePath performs basic validation on a path
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}
	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}
	return nil
}

// Segments splits the path of target relative to root into ordered
// segments. An empty slice means target is root itself.
func Segments(root, target string) []string {
	rel := RelativeTo(root, target)
	if rel == "." || rel == "" {
		return nil
	}
	return strings.Split(rel, "/")
}
