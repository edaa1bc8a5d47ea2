package monolens

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestWorkspace builds a small real workspace on disk
func setupTestWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	write := func(rel, content string) {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	write("pnpm-workspace.yaml", "packages:\n  - \"packages/*\"\n")
	write("package.json", `{"name": "root"}`)
	write("packages/foo/package.json", `{"name": "foo", "dependencies": {"bar": "workspace:*"}}`)
	write("packages/bar/package.json", `{"name": "bar"}`)
	write("packages/bar/node_modules/dep/package.json", `{"name": "dep"}`)

	return root
}

// runCommand executes the CLI with args and returns its output
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestListCommand(t *testing.T) {
	root := setupTestWorkspace(t)

	out, err := runCommand(t, "list", "--root", root)
	require.NoError(t, err)

	assert.Contains(t, out, "root\t.")
	assert.Contains(t, out, "foo\tpackages/foo")
	assert.Contains(t, out, "bar\tpackages/bar")
	assert.NotContains(t, out, "dep")
}

func TestDepsCommand(t *testing.T) {
	root := setupTestWorkspace(t)

	out, err := runCommand(t, "deps", "foo", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "bar\tpackages/bar")
}

func TestDepsCommandClassesDisabled(t *testing.T) {
	root := setupTestWorkspace(t)

	out, err := runCommand(t, "deps", "foo", "--root", root,
		"--no-production", "--no-development", "--no-optional")
	require.NoError(t, err)
	assert.Contains(t, out, MsgNoDeps)
}

func TestDepsCommandUnknownPackage(t *testing.T) {
	root := setupTestWorkspace(t)

	out, err := runCommand(t, "deps", "ghost", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Package ghost not found in workspace.")
	assert.NotContains(t, out, MsgNoDeps)
}

func TestResolveLinkCommand(t *testing.T) {
	root := setupTestWorkspace(t)

	real := filepath.Join(root, "packages", "bar")
	link := filepath.Join(root, "node_modules", "bar")
	require.NoError(t, os.MkdirAll(filepath.Dir(link), 0755))
	if err := os.Symlink(real, link); err != nil {
		t.Skipf("symlinks not supported here: %v", err)
	}

	out, err := runCommand(t, "resolve-link", link, "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, real)
}

func TestCheckLinkCommand(t *testing.T) {
	root := setupTestWorkspace(t)

	out, err := runCommand(t, "check-link", filepath.Join(root, "packages", "foo"), "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "false")
}
