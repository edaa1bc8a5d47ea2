package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/monolens/pkg/config"
	"github.com/arthur-debert/monolens/pkg/registry"
	"github.com/arthur-debert/monolens/pkg/testutil"
	"github.com/arthur-debert/monolens/pkg/types"
)

type recordingNotifier struct {
	warns []string
}

func (n *recordingNotifier) Info(msg string)  {}
func (n *recordingNotifier) Warn(msg string)  { n.warns = append(n.warns, msg) }
func (n *recordingNotifier) Error(msg string) {}

func buildFixture(t *testing.T) *testutil.MemoryFS {
	t.Helper()
	mfs := testutil.NewMemoryFS()
	testutil.WriteWorkspaceManifest(mfs, "/ws", "packages/*")
	testutil.WritePackage(t, mfs, "/ws", testutil.PackageSpec{Name: "root"})
	testutil.WritePackage(t, mfs, "/ws/packages/foo", testutil.PackageSpec{
		Name:         "foo",
		Dependencies: map[string]string{"bar": "workspace:*"},
	})
	testutil.WritePackage(t, mfs, "/ws/packages/bar", testutil.PackageSpec{Name: "bar"})
	return mfs
}

func TestGetBuildsLazily(t *testing.T) {
	mfs := buildFixture(t)
	reg := registry.New(mfs, types.NopNotifier{}, []string{"/ws"}, config.DefaultExcludes())

	packages := reg.Get()
	require.Len(t, packages, 3)

	names := make([]string, 0, len(packages))
	for _, p := range packages {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"root", "foo", "bar"}, names)
}

func TestLookup(t *testing.T) {
	mfs := buildFixture(t)
	reg := registry.New(mfs, types.NopNotifier{}, []string{"/ws"}, config.DefaultExcludes())

	record, ok := reg.Lookup("foo")
	require.True(t, ok)
	assert.Equal(t, "packages/foo", record.RelativePath)

	_, ok = reg.Lookup("missing")
	assert.False(t, ok)
}

func TestInvalidateRebuilds(t *testing.T) {
	mfs := buildFixture(t)
	reg := registry.New(mfs, types.NopNotifier{}, []string{"/ws"}, config.DefaultExcludes())

	require.Len(t, reg.Get(), 3)

	// Add a package after the first build; a plain Get still serves
	// the cached snapshot.
	testutil.WritePackage(t, mfs, "/ws/packages/baz", testutil.PackageSpec{Name: "baz"})
	assert.Len(t, reg.Get(), 3)

	reg.Invalidate()
	assert.Len(t, reg.Get(), 4)
}

func TestDuplicateNameFirstWins(t *testing.T) {
	mfs := buildFixture(t)
	// Second workspace declaring a conflicting "foo"
	testutil.WriteWorkspaceManifest(mfs, "/other", "libs/*")
	testutil.WritePackage(t, mfs, "/other/libs/foo", testutil.PackageSpec{Name: "foo"})

	notifier := &recordingNotifier{}
	// Roots are sorted, so /other is processed before /ws
	reg := registry.New(mfs, notifier, []string{"/ws", "/other"}, config.DefaultExcludes())

	record, ok := reg.Lookup("foo")
	require.True(t, ok)
	assert.Equal(t, "/other/libs/foo", record.Path)

	require.Len(t, notifier.warns, 1)
	assert.Contains(t, notifier.warns[0], "duplicate package name foo")
}

func TestRootWithoutWorkspaceManifestContributesNothing(t *testing.T) {
	mfs := buildFixture(t)
	mfs.MkdirAll("/plain")

	reg := registry.New(mfs, types.NopNotifier{}, []string{"/ws", "/plain"}, config.DefaultExcludes())
	assert.Len(t, reg.Get(), 3)
}

func TestEmptyPatternsYieldRootPackageOnly(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	testutil.WriteWorkspaceManifest(mfs, "/ws")
	testutil.WritePackage(t, mfs, "/ws", testutil.PackageSpec{Name: "root"})
	testutil.WritePackage(t, mfs, "/ws/packages/foo", testutil.PackageSpec{Name: "foo"})

	reg := registry.New(mfs, types.NopNotifier{}, []string{"/ws"}, config.DefaultExcludes())
	packages := reg.Get()

	require.Len(t, packages, 1)
	assert.Equal(t, "root", packages[0].Name)
	assert.True(t, packages[0].IsRoot)
	assert.Equal(t, ".", packages[0].RelativePath)
}
