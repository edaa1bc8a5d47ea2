package monolens

// Short messages (one-liners)
const (
	MsgRootShort = "Inspect monorepo workspaces"
	MsgRootLong = `monolens inspects pnpm-style monorepo workspaces: it discovers the
packages declared by the workspace manifest, resolves workspace-protocol
dependencies between them, and dereferences the symlink chains pnpm
installs into node_modules back to their source locations.`

	MsgListShort = "List all packages in the workspace"
	MsgListLong  = "List displays every package discovered under the workspace root, with its root-relative path."

	MsgDepsShort = "Show a package's workspace dependencies"
	MsgDepsLong = `Deps resolves the workspace-protocol dependencies of the named package
against the package registry and prints one edge per line, sorted by
dependency name.`

	MsgResolveLinkShort = "Resolve a symlink chain to its real path"
	MsgResolveLinkLong = `Resolve-link follows the chain of symbolic links starting at the given
path and prints the fully dereferenced real path. With --from-root, the
path is resolved segment-by-segment from the workspace root, so
symlinked intermediate directories redirect their descendants.`

	MsgCheckLinkShort = "Check whether a path crosses a symlink"
	MsgCheckLinkLong  = "Check-link walks the path from the workspace root and reports whether any segment is a symbolic link."

	MsgTopicsShort = "Show long-form documentation"

	// Status messages
	MsgNoPackages      = "No packages found."
	MsgNoDeps          = "No workspace dependencies."
	MsgPackageNotFound = "Package %s not found in workspace.\n"
)
