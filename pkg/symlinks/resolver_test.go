package symlinks_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/monolens/pkg/errors"
	"github.com/arthur-debert/monolens/pkg/filesystem"
	"github.com/arthur-debert/monolens/pkg/symlinks"
	"github.com/arthur-debert/monolens/pkg/testutil"
)

func TestResolveChain(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	mfs.WriteFile("/ws/real", "content")
	mfs.Symlink("/ws/real", "/ws/link1")
	mfs.Symlink("/ws/link1", "/ws/link2")

	resolver := symlinks.NewResolver(mfs)

	t.Run("non-link resolves to itself", func(t *testing.T) {
		resolved, err := resolver.ResolveChain("/ws/real")
		require.NoError(t, err)
		assert.Equal(t, "/ws/real", resolved)
	})

	t.Run("single link", func(t *testing.T) {
		resolved, err := resolver.ResolveChain("/ws/link1")
		require.NoError(t, err)
		assert.Equal(t, "/ws/real", resolved)
	})

	t.Run("chained links", func(t *testing.T) {
		resolved, err := resolver.ResolveChain("/ws/link2")
		require.NoError(t, err)
		assert.Equal(t, "/ws/real", resolved)
	})

	t.Run("idempotent", func(t *testing.T) {
		once, err := resolver.ResolveChain("/ws/link2")
		require.NoError(t, err)
		twice, err := resolver.ResolveChain(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})
}

func TestResolveChainRelativeTarget(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	mfs.WriteFile("/ws/real", "content")
	mfs.Symlink("../real", "/ws/subdir/link")

	resolver := symlinks.NewResolver(mfs)
	resolved, err := resolver.ResolveChain("/ws/subdir/link")
	require.NoError(t, err)
	assert.Equal(t, "/ws/real", resolved)
}

func TestResolveChainTwoNodeCycle(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	mfs.Symlink("/ws/b", "/ws/a")
	mfs.Symlink("/ws/a", "/ws/b")

	resolver := symlinks.NewResolver(mfs)

	for _, start := range []string{"/ws/a", "/ws/b"} {
		_, err := resolver.ResolveChain(start)
		require.Error(t, err, start)
		assert.True(t, errors.IsErrorCode(err, errors.ErrLinkCycle))
	}
}

func TestResolveChainSelfCycle(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	mfs.Symlink("/ws/self", "/ws/self")

	resolver := symlinks.NewResolver(mfs)
	_, err := resolver.ResolveChain("/ws/self")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLinkCycle))
}

func TestResolveChainBroken(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	mfs.Symlink("/nowhere", "/ws/dangling")

	resolver := symlinks.NewResolver(mfs)
	_, err := resolver.ResolveChain("/ws/dangling")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLinkBroken))
}

func TestResolveFromRoot(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	mfs.WriteFile("/ws/packages/foo/index.js", "code")
	mfs.MkdirAll("/ws/store/foo/pkg")
	mfs.WriteFile("/ws/store/foo/pkg/index.js", "code")
	// node_modules/foo is a symlinked intermediate directory
	mfs.Symlink("/ws/store/foo/pkg", "/ws/node_modules/foo")

	resolver := symlinks.NewResolver(mfs)

	t.Run("intermediate link redirects descendants", func(t *testing.T) {
		resolved, err := resolver.ResolveFromRoot("/ws/node_modules/foo/index.js", "/ws")
		require.NoError(t, err)
		assert.Equal(t, "/ws/store/foo/pkg/index.js", resolved)
	})

	t.Run("plain path resolves to itself", func(t *testing.T) {
		resolved, err := resolver.ResolveFromRoot("/ws/packages/foo/index.js", "/ws")
		require.NoError(t, err)
		assert.Equal(t, "/ws/packages/foo/index.js", resolved)
	})

	t.Run("root resolves to root", func(t *testing.T) {
		resolved, err := resolver.ResolveFromRoot("/ws", "/ws")
		require.NoError(t, err)
		assert.Equal(t, "/ws", resolved)
	})

	t.Run("out of scope returned unchanged", func(t *testing.T) {
		resolved, err := resolver.ResolveFromRoot("/elsewhere/file", "/ws")
		require.NoError(t, err)
		assert.Equal(t, "/elsewhere/file", resolved)
	})

	t.Run("broken segment fails", func(t *testing.T) {
		mfs.Symlink("/nowhere", "/ws/bad")
		_, err := resolver.ResolveFromRoot("/ws/bad/deep", "/ws")
		assert.Error(t, err)
	})
}

func TestContainsLink(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	mfs.WriteFile("/ws/packages/foo/index.js", "code")
	mfs.MkdirAll("/ws/store/pkg")
	mfs.Symlink("/ws/store/pkg", "/ws/node_modules/foo")

	resolver := symlinks.NewResolver(mfs)

	t.Run("link in path", func(t *testing.T) {
		found, err := resolver.ContainsLink("/ws/node_modules/foo", "/ws")
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("intermediate link short-circuits", func(t *testing.T) {
		// The descendant below the link doesn't exist at its literal
		// path; the walk must report true before inspecting it.
		found, err := resolver.ContainsLink("/ws/node_modules/foo/missing.js", "/ws")
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("plain path", func(t *testing.T) {
		found, err := resolver.ContainsLink("/ws/packages/foo/index.js", "/ws")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("uninspectable segment is false, not error", func(t *testing.T) {
		found, err := resolver.ContainsLink("/ws/does/not/exist", "/ws")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestUnsupportedEnvironment(t *testing.T) {
	// afero's MemMapFs has no lstat/readlink; all operations must
	// report unsupported rather than guessing.
	fsys := filesystem.NewAfero(afero.NewMemMapFs())
	resolver := symlinks.NewResolver(fsys)

	_, err := resolver.ResolveChain("/ws/anything")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedEnv))

	_, err = resolver.ResolveFromRoot("/ws/anything", "/ws")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedEnv))

	_, err = resolver.ContainsLink("/ws/anything", "/ws")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedEnv))
}

func TestResolveRelativeInputYieldsAbsolute(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real"), []byte("content"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "subdir"), 0755))
	if err := os.Symlink("../real", filepath.Join(dir, "subdir", "link")); err != nil {
		t.Skipf("symlinks not supported here: %v", err)
	}

	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.Chdir(dir))

	// Re-read the working directory: TempDir may hand back a path that
	// differs from what the OS reports after chdir.
	cwd, err := os.Getwd()
	require.NoError(t, err)

	resolver := symlinks.NewResolver(filesystem.NewOS())

	resolved, err := resolver.ResolveChain(filepath.Join("subdir", "link"))
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(resolved))
	assert.Equal(t, filepath.Join(cwd, "real"), resolved)

	// A relative path is inside a relative root, not out of scope
	found, err := resolver.ContainsLink(filepath.Join("subdir", "link"), ".")
	require.NoError(t, err)
	assert.True(t, found)

	fromRoot, err := resolver.ResolveFromRoot(filepath.Join("subdir", "link"), ".")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "real"), fromRoot)
}

func TestResolveChainOnRealFilesystem(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	require.NoError(t, os.WriteFile(real, []byte("content"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "subdir"), 0755))

	link := filepath.Join(dir, "subdir", "link")
	if err := os.Symlink("../real", link); err != nil {
		t.Skipf("symlinks not supported here: %v", err)
	}

	resolver := symlinks.NewResolver(filesystem.NewOS())
	resolved, err := resolver.ResolveChain(link)
	require.NoError(t, err)
	assert.Equal(t, real, resolved)
}
