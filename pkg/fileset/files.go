package fileset

import (
	"github.com/arthur-debert/fileset/pkg/logging"
)

// Files enumerates the tree and returns root-relative paths. The first
// element is always ".", followed by entries in breadth-first order; order
// within a directory is the filesystem's listing order.
func (f *Fileset) Files() ([]string, error) {
	done := logging.LogOperationStart(f.logger, "files")
	defer done()

	found := f.perform()
	if err := f.checkMaxFiles(len(found)); err != nil {
		return nil, err
	}

	f.logger.Debug().
		Str("path", f.path).
		Int("entries", len(found)).
		Bool("recurse", f.recurse).
		Str("recurselimit", f.recurseLimit.String()).
		Str("links", f.links.String()).
		Msg("Enumerated fileset")

	return relativize(f.path, found), nil
}
