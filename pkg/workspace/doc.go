// Package workspace locates workspace manifests across the open
// workspace roots and parses their package-root patterns into
// WorkspaceDescriptors.
//
// A root without a manifest contributes nothing and is not an error.
// A root whose manifest is malformed or schema-invalid is reported
// once and skipped; remaining roots continue processing.
package workspace
