package filesystem

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/fileset/pkg/types"
	"github.com/spf13/afero"
)

// ioFS mounts an io/fs tree at "/" so it can be traversed with absolute
// paths. io/fs has no symlinks, Lstat and Stat agree.
type ioFS struct {
	inner types.FS
}

// NewIOFS adapts an io/fs tree, such as an embed.FS, to types.FS
func NewIOFS(fsys fs.FS) types.FS {
	return &ioFS{inner: NewAferoFS(afero.FromIOFS{FS: fsys})}
}

func (i *ioFS) Stat(name string) (fs.FileInfo, error) {
	return i.inner.Stat(ioName(name))
}

func (i *ioFS) Lstat(name string) (fs.FileInfo, error) {
	return i.inner.Stat(ioName(name))
}

func (i *ioFS) ReadDirNames(name string) ([]string, error) {
	return i.inner.ReadDirNames(ioName(name))
}

// ioName turns "/a/b" into the unrooted "a/b" io/fs expects, and "/" into "."
func ioName(name string) string {
	name = strings.TrimLeft(filepath.ToSlash(name), "/")
	if name == "" {
		return "."
	}
	return path.Clean(name)
}
