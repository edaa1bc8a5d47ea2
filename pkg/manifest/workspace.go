package manifest

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/monolens/pkg/errors"
)

// workspaceManifestKey is the only key monolens reads from the
// workspace manifest.
const workspaceManifestKey = "packages"

// WorkspacePatterns is the classified content of a workspace manifest:
// include globs and excludes (the "!"-prefixed patterns, stored
// without the marker).
type WorkspacePatterns struct {
	Includes []string
	Excludes []string
}

// DecodeWorkspace parses pnpm-workspace.yaml content and classifies
// its package patterns.
//
// Malformed YAML yields CONFIG_PARSE; a well-formed document whose
// "packages" key is not a sequence of strings yields CONFIG_INVALID.
// An absent key is valid and means zero patterns.
func DecodeWorkspace(data []byte) (*WorkspacePatterns, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "workspace manifest is not valid YAML")
	}

	patterns := &WorkspacePatterns{}

	raw, ok := doc[workspaceManifestKey]
	if !ok || raw == nil {
		return patterns, nil
	}

	seq, ok := raw.([]interface{})
	if !ok {
		return nil, errors.Newf(errors.ErrConfigInvalid,
			"workspace manifest %q key must be a sequence of strings", workspaceManifestKey)
	}

	for _, item := range seq {
		pattern, ok := item.(string)
		if !ok {
			return nil, errors.Newf(errors.ErrConfigInvalid,
				"workspace manifest %q entries must be strings", workspaceManifestKey)
		}
		if pattern == "" {
			continue
		}
		if strings.HasPrefix(pattern, "!") {
			if rest := strings.TrimPrefix(pattern, "!"); rest != "" {
				patterns.Excludes = append(patterns.Excludes, rest)
			}
			continue
		}
		patterns.Includes = append(patterns.Includes, pattern)
	}

	return patterns, nil
}
