package types

// LinksPolicy controls how symlinks are classified during traversal
type LinksPolicy string

const (
	// LinksManage classifies entries without dereferencing symlinks (lstat).
	// A symlink to a directory is recorded but never expanded.
	LinksManage LinksPolicy = "manage"

	// LinksFollow dereferences symlinks (stat), expanding links to directories.
	LinksFollow LinksPolicy = "follow"
)

// IsValid reports whether p is one of the known policies
func (p LinksPolicy) IsValid() bool {
	return p == LinksManage || p == LinksFollow
}

func (p LinksPolicy) String() string {
	return string(p)
}
