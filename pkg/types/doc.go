// Package types defines the value types and interfaces shared by the
// fileset packages: the links policy, the recursion limit, the opaque
// checksum type and the read-only FS surface the traversal runs on.
package types
