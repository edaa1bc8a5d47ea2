// Package scan expands workspace package patterns into concrete
// package directories and loads their manifests into PackageRecords.
//
// Two discovery strategies implement the Finder interface: a glob
// search (the primary, one query over the whole tree) and a manual
// level-by-level walk used as a fallback on filesystems where the
// glob search is known to come back empty. Both honor the same
// exclude set and produce package-manifest paths.
package scan
