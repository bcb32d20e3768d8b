package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/fileset/pkg/types"
)

// Op identifies a types.FS operation
type Op string

const (
	OpStat         Op = "stat"
	OpLstat        Op = "lstat"
	OpReadDirNames Op = "readdirnames"
)

// FaultyFS wraps a types.FS, failing selected operations on selected paths
// and counting every call
type FaultyFS struct {
	mu     sync.Mutex
	inner  types.FS
	faults map[faultKey]error
	calls  map[Op][]string
}

type faultKey struct {
	op   Op
	path string
}

// NewFaultyFS wraps inner with no faults configured
func NewFaultyFS(inner types.FS) *FaultyFS {
	return &FaultyFS{
		inner:  inner,
		faults: make(map[faultKey]error),
		calls:  make(map[Op][]string),
	}
}

// WithError makes op on path fail with err
func (f *FaultyFS) WithError(op Op, path string, err error) *FaultyFS {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.faults[faultKey{op: op, path: filepath.Clean(path)}] = err
	return f
}

// Calls returns the paths op was invoked with, in call order
func (f *FaultyFS) Calls(op Op) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls[op]...)
}

func (f *FaultyFS) record(op Op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[op] = append(f.calls[op], path)
	if err, ok := f.faults[faultKey{op: op, path: filepath.Clean(path)}]; ok {
		return &fs.PathError{Op: string(op), Path: path, Err: err}
	}
	return nil
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.record(OpStat, name); err != nil {
		return nil, err
	}
	return f.inner.Stat(name)
}

func (f *FaultyFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.record(OpLstat, name); err != nil {
		return nil, err
	}
	return f.inner.Lstat(name)
}

func (f *FaultyFS) ReadDirNames(name string) ([]string, error) {
	if err := f.record(OpReadDirNames, name); err != nil {
		return nil, err
	}
	return f.inner.ReadDirNames(name)
}
