package fileset

import (
	"path/filepath"
	"strings"
)

// RootMarker is the relative path standing for the root itself
const RootMarker = "."

// relativize strips root and any following separators from each path and
// prepends RootMarker. Results use forward slashes.
func relativize(root string, paths []string) []string {
	files := make([]string, 0, len(paths)+1)
	files = append(files, RootMarker)

	for _, p := range paths {
		rel := strings.TrimPrefix(p, root)
		rel = strings.TrimLeft(rel, string(filepath.Separator))
		files = append(files, filepath.ToSlash(rel))
	}
	return files
}
