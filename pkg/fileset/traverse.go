package fileset

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/fileset/pkg/types"
)

// node is a queued directory candidate. parent and info are kept for the
// cycle check under LinksFollow.
type node struct {
	depth  int
	path   string
	info   fs.FileInfo
	parent *node
}

// admit reports whether an entry at depth may appear in the results
func (f *Fileset) admit(depth int) bool {
	return f.recurse && f.recurseLimit.Allows(depth)
}

// perform walks the tree breadth-first and returns admitted absolute paths
// in queue order. The root itself is not included.
func (f *Fileset) perform() []string {
	stat := statFor(f.fs, f.links)
	queue := []*node{{depth: 0, path: f.path}}

	var result []string
	for len(queue) > 0 {
		current := queue[0]
		queue[0] = nil
		queue = queue[1:]

		// Children of current would be invisible, so don't touch the disk
		if !f.admit(current.depth + 1) {
			continue
		}

		info, err := stat(current.path)
		if err != nil {
			f.logger.Debug().Err(err).Str("path", current.path).Msg("Skipping entry that cannot be stat'ed")
			continue
		}
		if !info.IsDir() {
			continue
		}
		current.info = info

		if f.links == types.LinksFollow && current.revisitsAncestor() {
			f.logger.Debug().Str("path", current.path).Msg("Not expanding symlink cycle")
			continue
		}

		names, err := f.fs.ReadDirNames(current.path)
		if err != nil {
			f.logger.Debug().Err(err).Str("path", current.path).Msg("Skipping directory that cannot be listed")
			continue
		}

		for _, name := range names {
			if name == "." || name == ".." {
				continue
			}
			if f.shouldIgnore(name) {
				f.logger.Trace().Str("dir", current.path).Str("entry", name).Msg("Ignoring entry")
				continue
			}

			child := &node{
				depth:  current.depth + 1,
				path:   filepath.Join(current.path, name),
				parent: current,
			}
			result = append(result, child.path)
			queue = append(queue, child)
		}
	}

	return result
}

// revisitsAncestor reports whether n is the same directory as one of its
// ancestors, which only happens through symlinks
func (n *node) revisitsAncestor() bool {
	for p := n.parent; p != nil; p = p.parent {
		if p.info != nil && os.SameFile(p.info, n.info) {
			return true
		}
	}
	return false
}
