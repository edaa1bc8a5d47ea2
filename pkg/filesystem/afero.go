package filesystem

import (
	"io/fs"

	"github.com/spf13/afero"

	"github.com/arthur-debert/monolens/pkg/errors"
	"github.com/arthur-debert/monolens/pkg/types"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAfero creates a new afero filesystem implementation. Afero-backed
// filesystems are treated as non-local: the scanner will fall back to
// the manual walk when the glob search finds nothing.
func NewAfero(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	return entries, nil
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	// MemMapFs and friends have no lstat; report that honestly so the
	// symlink resolver can surface "unsupported" instead of lying.
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, lstatCalled, err := lstater.LstatIfPossible(name)
		if err != nil {
			return nil, err
		}
		if !lstatCalled {
			return nil, errors.New(errors.ErrUnsupportedEnv, "filesystem does not support lstat").
				WithDetail("path", name)
		}
		return info, nil
	}
	return nil, errors.New(errors.ErrUnsupportedEnv, "filesystem does not support lstat").
		WithDetail("path", name)
}

func (a *aferoFS) Readlink(name string) (string, error) {
	if reader, ok := a.fs.(afero.LinkReader); ok {
		return reader.ReadlinkIfPossible(name)
	}
	return "", errors.New(errors.ErrUnsupportedEnv, "filesystem does not support readlink").
		WithDetail("path", name)
}

func (a *aferoFS) IsLocal() bool {
	return false
}
