package symlinks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/monolens/pkg/errors"
	"github.com/arthur-debert/monolens/pkg/logging"
	"github.com/arthur-debert/monolens/pkg/paths"
	"github.com/arthur-debert/monolens/pkg/types"
)

// walkState tracks where a resolution is in its lifecycle
type walkState int

const (
	stateFollowing walkState = iota
	stateDone
	stateCycle
	stateBroken
)

// Resolver dereferences symlink chains against a filesystem
type Resolver struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewResolver creates a symlink resolver
func NewResolver(fsys types.FS) *Resolver {
	return &Resolver{
		fs:     fsys,
		logger: logging.GetLogger("symlinks.resolver"),
	}
}

// ResolveChain follows the chain of symlinks starting at path until a
// non-link node is reached and returns that node's absolute path. A
// relative input resolves against the working directory; relative link
// targets resolve against the link's containing directory.
//
// A cycle yields LINK_CYCLE; a stat or readlink failure on a path that
// should exist yields LINK_BROKEN. UNSUPPORTED_ENV passes through
// untouched.
func (r *Resolver) ResolveChain(path string) (string, error) {
	current, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "cannot make path absolute").
			WithDetail("path", path)
	}
	// Visited keys are absolute paths, so cycles are caught no matter
	// how the chain's links spell their targets.
	visited := make(map[string]bool)
	state := stateFollowing

	for state == stateFollowing {
		if visited[current] {
			state = stateCycle
			break
		}
		visited[current] = true

		info, err := r.fs.Lstat(current)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrUnsupportedEnv) {
				return "", err
			}
			state = stateBroken
			r.logger.Debug().Err(err).Str("path", current).Msg("Cannot inspect path in link chain")
			break
		}

		if info.Mode()&os.ModeSymlink == 0 {
			state = stateDone
			break
		}

		target, err := r.fs.Readlink(current)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrUnsupportedEnv) {
				return "", err
			}
			state = stateBroken
			r.logger.Debug().Err(err).Str("path", current).Msg("Cannot read link target")
			break
		}

		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(current), target)
		}
		current = filepath.Clean(target)
	}

	switch state {
	case stateCycle:
		return "", errors.New(errors.ErrLinkCycle, "symlink chain is cyclic").
			WithDetail("path", path).
			WithDetail("at", current)
	case stateBroken:
		return "", errors.New(errors.ErrLinkBroken, "symlink chain is broken").
			WithDetail("path", path).
			WithDetail("at", current)
	}
	return current, nil
}

// ResolveFromRoot resolves path segment-by-segment starting at root,
// so a symlinked intermediate directory redirects all of its
// descendants. A path outside root is returned unchanged; that is not
// an error.
func (r *Resolver) ResolveFromRoot(path, root string) (string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "cannot make root absolute").
			WithDetail("root", root)
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "cannot make path absolute").
			WithDetail("path", path)
	}

	rel, err := filepath.Rel(root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		r.logger.Debug().Str("path", path).Str("root", root).Msg("Path is outside root, returned unchanged")
		return path, nil
	}
	if rel == "." {
		return root, nil
	}

	current := root
	for _, segment := range paths.Segments(root, target) {
		resolved, err := r.ResolveChain(filepath.Join(current, segment))
		if err != nil {
			return "", err
		}
		// Descend from the resolved location, not the original one
		current = resolved
	}
	return current, nil
}

// ContainsLink reports whether any segment of path, walked from root,
// is itself a symbolic link. Segments that cannot be inspected count
// as non-links; only a missing lstat primitive is surfaced as an
// error.
func (r *Resolver) ContainsLink(path, root string) (bool, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrInvalidInput, "cannot make root absolute").
			WithDetail("root", root)
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrInvalidInput, "cannot make path absolute").
			WithDetail("path", path)
	}

	rel, err := filepath.Rel(root, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false, nil
	}

	current := root
	for _, segment := range paths.Segments(root, target) {
		current = filepath.Join(current, segment)

		info, err := r.fs.Lstat(current)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrUnsupportedEnv) {
				return false, err
			}
			return false, nil
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return true, nil
		}
	}
	return false, nil
}
