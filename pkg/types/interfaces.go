package types

import (
	"io/fs"
)

// FS defines the filesystem operations needed to enumerate a tree
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)

	// Lstat must not follow a trailing symlink.
	// For filesystems without symlinks, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)

	// Directory operations
	// ReadDirNames returns entry names in listing order, without "." and ".."
	ReadDirNames(name string) ([]string, error)
}
