package scan

import (
	"bytes"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/monolens/pkg/types"
)

// ioFS adapts a types.FS rooted at a directory to the standard io/fs
// interfaces doublestar globs over. Paths are slash-separated and
// relative to the root, per io/fs conventions.
type ioFS struct {
	fsys types.FS
	root string
}

func newIOFS(fsys types.FS, root string) *ioFS {
	return &ioFS{fsys: fsys, root: root}
}

func (f *ioFS) full(name string) string {
	if name == "." {
		return f.root
	}
	return filepath.Join(f.root, filepath.FromSlash(name))
}

func (f *ioFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	full := f.full(name)
	info, err := f.fsys.Stat(full)
	if err != nil {
		return nil, err
	}
	file := &ioFile{info: info}
	if !info.IsDir() {
		data, err := f.fsys.ReadFile(full)
		if err != nil {
			return nil, err
		}
		file.reader = bytes.NewReader(data)
	}
	return file, nil
}

func (f *ioFS) Stat(name string) (fs.FileInfo, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrInvalid}
	}
	return f.fsys.Stat(f.full(name))
}

func (f *ioFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	return f.fsys.ReadDir(f.full(name))
}

// ioFile is the minimal fs.File the glob walk needs
type ioFile struct {
	info   fs.FileInfo
	reader *bytes.Reader
}

func (f *ioFile) Stat() (fs.FileInfo, error) { return f.info, nil }
func (f *ioFile) Close() error               { return nil }

func (f *ioFile) Read(p []byte) (int, error) {
	if f.reader == nil {
		return 0, io.EOF
	}
	return f.reader.Read(p)
}
