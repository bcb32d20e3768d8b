package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/fileset/pkg/filesystem"
	"github.com/arthur-debert/fileset/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new empty in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// NewIsolatedFS returns the OS filesystem used with NewIsolatedTree
func NewIsolatedFS() types.FS {
	return filesystem.NewOS()
}

// NewMemoryFS creates tree under root on a fresh in-memory filesystem.
// Memory listings are sorted by name.
func NewMemoryFS(t *testing.T, root string, tree FileTree) types.FS {
	t.Helper()

	mem := afero.NewMemMapFs()
	if err := mem.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Failed to create root %s: %v", root, err)
	}
	CreateTree(t, mem, root, tree)
	return filesystem.NewAferoFS(mem)
}

// NewIsolatedTree creates tree in a temporary directory on the real
// filesystem and returns the directory's path.
func NewIsolatedTree(t *testing.T, tree FileTree) string {
	t.Helper()

	root := t.TempDir()
	CreateTree(t, afero.NewOsFs(), root, tree)
	return root
}

// CreateTree recursively creates tree below basePath on fsys
func CreateTree(t *testing.T, fsys afero.Fs, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := afero.WriteFile(fsys, fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := fsys.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			CreateTree(t, fsys, fullPath, v)
		case Symlink:
			linker, ok := fsys.(afero.Linker)
			if !ok {
				t.Fatalf("Filesystem %s cannot create symlink %s", fsys.Name(), fullPath)
			}
			if err := linker.SymlinkIfPossible(string(v), fullPath); err != nil {
				t.Fatalf("Failed to create symlink %s: %v", fullPath, err)
			}
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
