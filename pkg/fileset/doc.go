// Package fileset enumerates a directory tree as root-relative paths.
//
// A Fileset couples an absolute root path with traversal policy: glob
// patterns that prune entries by base name, a links policy deciding whether
// symlinked directories are expanded, and a recursion toggle with an
// optional depth limit. Files walks the tree breadth-first and returns "."
// followed by every admitted entry relative to the root. Merge folds the
// results of several filesets, the first fileset containing a path wins.
//
// Configuration arrives either as a typed options map (New) or through a
// Request exposing loosely typed values (NewFromRequest). Both paths share
// one table of validating setters, so they reject the same inputs.
//
// Per-entry stat or listing failures during traversal are skipped silently.
// A Fileset is not safe for concurrent use.
package fileset
