package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// maxLinkDepth bounds internal link following in Stat/ReadFile so a
// cyclic fixture fails instead of spinning.
const maxLinkDepth = 40

// MemoryFS implements types.FS with in-memory storage. Unlike afero's
// MemMapFs it models symlinks as first-class nodes, so Lstat and
// Readlink behave like the OS filesystem.
type MemoryFS struct {
	mu    sync.RWMutex
	nodes map[string]*fileNode

	// Error injection
	errorPaths map[string]error
}

// fileNode represents a file, directory, or symlink in memory
type fileNode struct {
	name     string
	mode     os.FileMode
	modTime  time.Time
	content  []byte
	isDir    bool
	isLink   bool
	linkDest string
}

// NewMemoryFS creates a new in-memory filesystem containing only the
// root directory.
func NewMemoryFS() *MemoryFS {
	m := &MemoryFS{
		nodes:      make(map[string]*fileNode),
		errorPaths: make(map[string]error),
	}
	m.nodes["/"] = &fileNode{name: "/", mode: 0755 | os.ModeDir, modTime: time.Now(), isDir: true}
	return m
}

func normalize(path string) string {
	if !filepath.IsAbs(path) {
		path = "/" + path
	}
	return filepath.Clean(path)
}

// InjectError makes every operation on path fail with err
func (m *MemoryFS) InjectError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[normalize(path)] = err
}

// MkdirAll creates a directory and all missing parents
func (m *MemoryFS) MkdirAll(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mkdirAllLocked(normalize(path))
}

func (m *MemoryFS) mkdirAllLocked(path string) {
	for p := path; ; p = filepath.Dir(p) {
		if _, ok := m.nodes[p]; !ok {
			m.nodes[p] = &fileNode{
				name:    filepath.Base(p),
				mode:    0755 | os.ModeDir,
				modTime: time.Now(),
				isDir:   true,
			}
		}
		if p == "/" {
			break
		}
	}
}

// WriteFile creates a file with the given content, creating parent
// directories as needed
func (m *MemoryFS) WriteFile(path, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = normalize(path)
	m.mkdirAllLocked(filepath.Dir(path))
	m.nodes[path] = &fileNode{
		name:    filepath.Base(path),
		mode:    0644,
		modTime: time.Now(),
		content: []byte(content),
	}
}

// Symlink creates a symlink at linkPath pointing at target. The target
// does not need to exist; that's how broken links are built.
func (m *MemoryFS) Symlink(target, linkPath string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	linkPath = normalize(linkPath)
	m.mkdirAllLocked(filepath.Dir(linkPath))
	m.nodes[linkPath] = &fileNode{
		name:     filepath.Base(linkPath),
		mode:     0777 | os.ModeSymlink,
		modTime:  time.Now(),
		isLink:   true,
		linkDest: target,
	}
}

func (m *MemoryFS) getNode(path string) (*fileNode, error) {
	if err, ok := m.errorPaths[path]; ok {
		return nil, err
	}
	node, ok := m.nodes[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return node, nil
}

// resolve follows symlinks until a non-link node (or failure)
func (m *MemoryFS) resolve(path string) (string, *fileNode, error) {
	for i := 0; i < maxLinkDepth; i++ {
		node, err := m.getNode(path)
		if err != nil {
			return "", nil, err
		}
		if !node.isLink {
			return path, node, nil
		}
		dest := node.linkDest
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(path), dest)
		}
		path = filepath.Clean(dest)
	}
	return "", nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrInvalid}
}

// Stat implements types.FS; it follows symlinks
func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, node, err := m.resolve(normalize(name))
	if err != nil {
		return nil, err
	}
	return &memFileInfo{node: node}, nil
}

// Lstat implements types.FS; symlink nodes are reported as links
func (m *MemoryFS) Lstat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	node, err := m.getNode(normalize(name))
	if err != nil {
		return nil, err
	}
	return &memFileInfo{node: node}, nil
}

// ReadFile implements types.FS; it follows symlinks
func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	path, node, err := m.resolve(normalize(name))
	if err != nil {
		return nil, err
	}
	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: path, Err: fs.ErrInvalid}
	}
	content := make([]byte, len(node.content))
	copy(content, node.content)
	return content, nil
}

// Readlink implements types.FS
func (m *MemoryFS) Readlink(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	node, err := m.getNode(normalize(name))
	if err != nil {
		return "", err
	}
	if !node.isLink {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: fs.ErrInvalid}
	}
	return node.linkDest, nil
}

// ReadDir implements types.FS; entries are sorted by name
func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	path, node, err := m.resolve(normalize(name))
	if err != nil {
		return nil, err
	}
	if !node.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrInvalid}
	}

	prefix := path
	if prefix != "/" {
		prefix += "/"
	}

	var entries []fs.DirEntry
	for p, n := range m.nodes {
		if p == path || !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		if strings.Contains(rest, "/") {
			continue
		}
		entries = append(entries, &memDirEntry{name: rest, node: n})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// IsLocal reports false: memory filesystems are not local disks, so
// the scanner exercises its fallback path in tests.
func (m *MemoryFS) IsLocal() bool {
	return false
}

// memFileInfo adapts a fileNode to fs.FileInfo
type memFileInfo struct {
	node *fileNode
}

func (i *memFileInfo) Name() string       { return i.node.name }
func (i *memFileInfo) Size() int64        { return int64(len(i.node.content)) }
func (i *memFileInfo) Mode() fs.FileMode  { return i.node.mode }
func (i *memFileInfo) ModTime() time.Time { return i.node.modTime }
func (i *memFileInfo) IsDir() bool        { return i.node.isDir }
func (i *memFileInfo) Sys() interface{}   { return nil }

// memDirEntry adapts a fileNode to fs.DirEntry
type memDirEntry struct {
	name string
	node *fileNode
}

func (e *memDirEntry) Name() string               { return e.name }
func (e *memDirEntry) IsDir() bool                { return e.node.isDir }
func (e *memDirEntry) Type() fs.FileMode          { return e.node.mode.Type() }
func (e *memDirEntry) Info() (fs.FileInfo, error) { return &memFileInfo{node: e.node}, nil }
