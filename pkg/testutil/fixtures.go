package testutil

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

// PackageSpec describes a package manifest for fixture building
type PackageSpec struct {
	Name                 string
	Dependencies         map[string]string
	DevDependencies      map[string]string
	OptionalDependencies map[string]string
}

// WriteWorkspaceManifest writes a pnpm-workspace.yaml at root with the
// given package patterns.
func WriteWorkspaceManifest(fs *MemoryFS, root string, patterns ...string) {
	var b strings.Builder
	b.WriteString("packages:\n")
	for _, p := range patterns {
		b.WriteString("  - \"" + p + "\"\n")
	}
	if len(patterns) == 0 {
		b.Reset()
		b.WriteString("packages: []\n")
	}
	fs.WriteFile(filepath.Join(root, "pnpm-workspace.yaml"), b.String())
}

// WritePackage writes a package.json into dir from the given spec
func WritePackage(t *testing.T, fs *MemoryFS, dir string, spec PackageSpec) {
	t.Helper()

	doc := map[string]interface{}{"name": spec.Name}
	if len(spec.Dependencies) > 0 {
		doc["dependencies"] = spec.Dependencies
	}
	if len(spec.DevDependencies) > 0 {
		doc["devDependencies"] = spec.DevDependencies
	}
	if len(spec.OptionalDependencies) > 0 {
		doc["optionalDependencies"] = spec.OptionalDependencies
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal package manifest for %s: %v", dir, err)
	}
	fs.WriteFile(filepath.Join(dir, "package.json"), string(data))
}
