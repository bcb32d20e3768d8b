// Package testutil provides utilities for testing fileset components.
//
// Key components:
//   - FileTree: declarative directory structure (files, directories, symlinks)
//   - NewMemoryFS: in-memory tree backed by afero, with sorted listings
//   - NewIsolatedTree: real tree under t.TempDir(), needed for symlinks
//   - FaultyFS: wraps a types.FS to inject errors and record calls
//
// Usage guidelines:
//   - Prefer NewMemoryFS; its sorted listings allow exact order assertions
//   - Use NewIsolatedTree only when a test needs symlinks or OS listing order
//   - All test data should be defined inline, not in external files
package testutil
