package fileset

import (
	"github.com/arthur-debert/fileset/pkg/errors"
)

// SoftMaxFiles is the entry count above which a warning is logged when
// max_files is left at 0
const SoftMaxFiles = 1000

func (f *Fileset) checkMaxFiles(entries int) error {
	switch {
	case f.maxFiles > 0 && entries > f.maxFiles:
		return errors.Newf(errors.ErrTooManyFiles,
			"the directory %s contains %d entries, which exceeds the limit of %d specified by max_files",
			f.path, entries, f.maxFiles).
			WithDetail("path", f.path).
			WithDetail("entries", entries).
			WithDetail("max_files", f.maxFiles)
	case f.maxFiles == 0 && entries > SoftMaxFiles:
		f.logger.Warn().
			Str("path", f.path).
			Int("entries", entries).
			Int("softLimit", SoftMaxFiles).
			Msg("Directory exceeds the default soft limit; set max_files to silence this warning")
	}
	return nil
}
