package testutil

// FileTree represents a nested file structure for declarative test setup.
// Values are a string (file content), a nested FileTree (directory) or a
// Symlink.
type FileTree map[string]interface{}

// Symlink is a FileTree entry creating a symbolic link to the given target.
// Relative targets are resolved against the link's directory by the OS.
type Symlink string
