package workspace_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/monolens/pkg/config"
	"github.com/arthur-debert/monolens/pkg/testutil"
	"github.com/arthur-debert/monolens/pkg/types"
	"github.com/arthur-debert/monolens/pkg/workspace"
)

// recordingNotifier captures user-facing diagnostics for assertions
type recordingNotifier struct {
	infos, warns, errs []string
}

func (n *recordingNotifier) Info(msg string)  { n.infos = append(n.infos, msg) }
func (n *recordingNotifier) Warn(msg string)  { n.warns = append(n.warns, msg) }
func (n *recordingNotifier) Error(msg string) { n.errs = append(n.errs, msg) }

func TestLocate(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	testutil.WriteWorkspaceManifest(mfs, "/ws", "packages/*", "!packages/fixtures")

	locator := workspace.NewLocator(mfs, types.NopNotifier{}, config.DefaultExcludes())
	descriptors := locator.Locate([]string{"/ws"})

	require.Len(t, descriptors, 1)
	ws := descriptors[0]
	assert.Equal(t, "/ws", ws.Root)
	assert.Equal(t, "/ws/pnpm-workspace.yaml", ws.ManifestPath)
	assert.Equal(t, []string{"packages/*"}, ws.Includes)
	assert.Equal(t, []string{"packages/fixtures"}, ws.Excludes)
}

func TestLocateNoManifest(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	mfs.MkdirAll("/ws")

	locator := workspace.NewLocator(mfs, types.NopNotifier{}, config.DefaultExcludes())
	descriptors := locator.Locate([]string{"/ws"})

	assert.Empty(t, descriptors)
}

func TestLocateBadManifestDegradesSingleRoot(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	mfs.WriteFile("/bad/pnpm-workspace.yaml", "packages: \"not-a-sequence\"\n")
	testutil.WriteWorkspaceManifest(mfs, "/good", "packages/*")

	notifier := &recordingNotifier{}
	locator := workspace.NewLocator(mfs, notifier, config.DefaultExcludes())
	descriptors := locator.Locate([]string{"/bad", "/good"})

	// The bad root is skipped and reported; the good one survives.
	require.Len(t, descriptors, 1)
	assert.Equal(t, "/good", descriptors[0].Root)
	require.Len(t, notifier.errs, 1)
	assert.Contains(t, notifier.errs[0], "/bad/pnpm-workspace.yaml")
}

func TestLocateRootNamedLikeExcludedDir(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	testutil.WriteWorkspaceManifest(mfs, "/ws/node_modules", "packages/*")

	locator := workspace.NewLocator(mfs, types.NopNotifier{}, config.DefaultExcludes())
	descriptors := locator.Locate([]string{"/ws/node_modules"})

	assert.Empty(t, descriptors)
}

func TestLocateRootUnderExcludedLikeAncestor(t *testing.T) {
	// Only the root itself is subject to exclusion; a host path that
	// happens to contain "build" or "out" must still be located.
	mfs := testutil.NewMemoryFS()
	testutil.WriteWorkspaceManifest(mfs, "/home/build/ws", "packages/*")
	testutil.WriteWorkspaceManifest(mfs, "/srv/out/coverage/ws", "packages/*")

	locator := workspace.NewLocator(mfs, types.NopNotifier{}, config.DefaultExcludes())
	descriptors := locator.Locate([]string{"/home/build/ws", "/srv/out/coverage/ws"})

	require.Len(t, descriptors, 2)
	assert.Equal(t, "/home/build/ws", descriptors[0].Root)
	assert.Equal(t, "/srv/out/coverage/ws", descriptors[1].Root)
}

func TestLocateUnreadableManifest(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	testutil.WriteWorkspaceManifest(mfs, "/ws", "packages/*")
	mfs.InjectError("/ws/pnpm-workspace.yaml", fs.ErrPermission)

	locator := workspace.NewLocator(mfs, types.NopNotifier{}, config.DefaultExcludes())
	assert.Empty(t, locator.Locate([]string{"/ws"}))
}

func TestLocateEmptyPatternSequence(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	testutil.WriteWorkspaceManifest(mfs, "/ws")

	locator := workspace.NewLocator(mfs, types.NopNotifier{}, config.DefaultExcludes())
	descriptors := locator.Locate([]string{"/ws"})

	require.Len(t, descriptors, 1)
	assert.Empty(t, descriptors[0].Includes)
}
