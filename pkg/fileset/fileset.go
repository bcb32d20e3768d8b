package fileset

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/fileset/pkg/errors"
	"github.com/arthur-debert/fileset/pkg/filesystem"
	"github.com/arthur-debert/fileset/pkg/logging"
	"github.com/arthur-debert/fileset/pkg/types"
	"github.com/rs/zerolog"
)

// Fileset is a root path plus the policy used to enumerate it
type Fileset struct {
	path         string
	ignore       []string
	links        types.LinksPolicy
	recurse      bool
	recurseLimit types.RecurseLimit
	checksumType types.ChecksumType
	maxFiles     int

	fs     types.FS
	logger zerolog.Logger
}

// New creates a Fileset rooted at path on the OS filesystem
func New(path string, options map[string]interface{}) (*Fileset, error) {
	return NewWithFS(filesystem.NewOS(), path, options)
}

// NewWithFS creates a Fileset rooted at path on fsys.
// Options are applied in key order through Set, then the root is checked
// for existence with the resulting links policy.
func NewWithFS(fsys types.FS, path string, options map[string]interface{}) (*Fileset, error) {
	f, err := newFileset(fsys, path)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := f.Set(key, options[key]); err != nil {
			return nil, err
		}
	}

	if err := f.validateRoot(); err != nil {
		return nil, err
	}
	return f, nil
}

// NewFromRequest creates a Fileset rooted at path on the OS filesystem,
// reading options from req
func NewFromRequest(path string, req Request) (*Fileset, error) {
	return NewFromRequestWithFS(filesystem.NewOS(), path, req)
}

// NewFromRequestWithFS creates a Fileset rooted at path on fsys, reading
// options from req
func NewFromRequestWithFS(fsys types.FS, path string, req Request) (*Fileset, error) {
	f, err := newFileset(fsys, path)
	if err != nil {
		return nil, err
	}

	if err := f.applyRequest(req); err != nil {
		return nil, err
	}

	if err := f.validateRoot(); err != nil {
		return nil, err
	}
	return f, nil
}

func newFileset(fsys types.FS, path string) (*Fileset, error) {
	if !filepath.IsAbs(path) {
		return nil, errors.Newf(errors.ErrInvalidArgument, "fileset paths must be fully qualified: %s", path).
			WithDetail("path", path)
	}

	return &Fileset{
		path:         normalizeRoot(path),
		links:        types.LinksManage,
		recurseLimit: types.RecurseInfinite,
		fs:           fsys,
		logger:       logging.GetLogger("fileset"),
	}, nil
}

func (f *Fileset) validateRoot() error {
	if _, err := f.stat(f.path); err != nil {
		return errors.Wrapf(err, errors.ErrInvalidArgument, "fileset paths must exist: %s", f.path).
			WithDetail("path", f.path)
	}
	return nil
}

// normalizeRoot strips trailing separators unless path is a filesystem or
// drive root
func normalizeRoot(path string) string {
	volume := filepath.VolumeName(path)
	rest := path[len(volume):]

	trimmed := strings.TrimRight(rest, `/`+string(filepath.Separator))
	if trimmed == "" && rest != "" {
		return volume + rest[:1]
	}
	return volume + trimmed
}

// Path returns the normalized root path
func (f *Fileset) Path() string {
	return f.path
}

// Ignore returns a copy of the ignore patterns
func (f *Fileset) Ignore() []string {
	return append([]string(nil), f.ignore...)
}

// Links returns the links policy
func (f *Fileset) Links() types.LinksPolicy {
	return f.links
}

// Recurse reports whether recursion is enabled
func (f *Fileset) Recurse() bool {
	return f.recurse
}

// RecurseLimit returns the recursion depth limit
func (f *Fileset) RecurseLimit() types.RecurseLimit {
	return f.recurseLimit
}

// ChecksumType returns the pass-through checksum type
func (f *Fileset) ChecksumType() types.ChecksumType {
	return f.checksumType
}

// MaxFiles returns the max_files setting
func (f *Fileset) MaxFiles() int {
	return f.maxFiles
}

// SetIgnore replaces the ignore patterns
func (f *Fileset) SetIgnore(patterns ...string) {
	f.ignore = append([]string(nil), patterns...)
}

// SetLinks sets the links policy
func (f *Fileset) SetLinks(links types.LinksPolicy) error {
	if !links.IsValid() {
		return errors.Newf(errors.ErrInvalidArgument, "invalid links value %q", string(links)).
			WithDetail("links", string(links))
	}
	f.links = links
	return nil
}

// SetRecurse enables or disables recursion
func (f *Fileset) SetRecurse(recurse bool) {
	f.recurse = recurse
}

// SetRecurseLimit sets the recursion depth limit
func (f *Fileset) SetRecurseLimit(limit types.RecurseLimit) error {
	if !limit.IsValid() {
		return errors.Newf(errors.ErrInvalidArgument, "invalid recurselimit %d, must be infinite or a non-negative integer", int(limit)).
			WithDetail("recurselimit", int(limit))
	}
	f.recurseLimit = limit
	return nil
}

// SetChecksumType sets the pass-through checksum type
func (f *Fileset) SetChecksumType(checksumType types.ChecksumType) {
	f.checksumType = checksumType
}

// SetMaxFiles sets the entry limit: positive values are a hard limit, 0
// selects the soft limit and -1 disables both
func (f *Fileset) SetMaxFiles(maxFiles int) error {
	if maxFiles < -1 {
		return errors.Newf(errors.ErrInvalidArgument, "invalid max_files %d, must be -1 or greater", maxFiles).
			WithDetail("max_files", maxFiles)
	}
	f.maxFiles = maxFiles
	return nil
}

// stat classifies path with the strategy selected by the links policy
func (f *Fileset) stat(path string) (fs.FileInfo, error) {
	return statFor(f.fs, f.links)(path)
}

// statFor returns Lstat for LinksManage and Stat for LinksFollow
func statFor(fsys types.FS, links types.LinksPolicy) func(string) (fs.FileInfo, error) {
	if links == types.LinksFollow {
		return fsys.Stat
	}
	return fsys.Lstat
}
