package manifest

import (
	"encoding/json"

	"github.com/arthur-debert/monolens/pkg/errors"
	"github.com/arthur-debert/monolens/pkg/types"
)

// PackageManifest is the decoded form of a package.json, reduced to
// the fields monolens reads.
type PackageManifest struct {
	Name                 string            `json:"name"`
	Dependencies         map[string]string `json:"dependencies"`
	DevDependencies      map[string]string `json:"devDependencies"`
	OptionalDependencies map[string]string `json:"optionalDependencies"`
}

// DecodePackage parses raw package.json content. Malformed JSON yields
// a MANIFEST_PARSE error; the result is not validated.
func DecodePackage(data []byte) (*PackageManifest, error) {
	var m PackageManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "package manifest is not valid JSON")
	}
	return &m, nil
}

// Validate checks the decoded manifest against the schema: name must
// be non-empty, and every declared dependency must bind a non-empty
// name to a non-empty version specifier.
func (m *PackageManifest) Validate() error {
	if m.Name == "" {
		return errors.New(errors.ErrManifestInvalid, "package manifest has no name")
	}
	for _, class := range types.MergeOrder {
		for name, spec := range m.ClassMap(class) {
			if name == "" {
				return errors.Newf(errors.ErrManifestInvalid, "%s declares an empty dependency name", class)
			}
			if spec == "" {
				return errors.Newf(errors.ErrManifestInvalid, "%s[%s] has an empty version specifier", class, name)
			}
		}
	}
	return nil
}

// ClassMap returns the dependency map for one class; nil when the
// manifest does not declare that class.
func (m *PackageManifest) ClassMap(class types.DependencyClass) map[string]string {
	switch class {
	case types.ClassProduction:
		return m.Dependencies
	case types.ClassDevelopment:
		return m.DevDependencies
	case types.ClassOptional:
		return m.OptionalDependencies
	}
	return nil
}

// ReadPackage loads, decodes, and validates a package manifest from
// the filesystem.
func ReadPackage(fsys types.FS, path string) (*PackageManifest, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read package manifest").
			WithDetail("path", path)
	}
	m, err := DecodePackage(data)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
