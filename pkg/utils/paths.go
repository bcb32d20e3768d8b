package utils

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/fileset/pkg/errors"
)

// HomeDirectory returns the user's home directory, falling back to $HOME
func HomeDirectory() (string, error) {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home, nil
	}
	if home := os.Getenv("HOME"); home != "" {
		return home, nil
	}
	return "", errors.New(errors.ErrInvalidArgument, "unable to determine home directory")
}

// ExpandPath expands a leading ~ and environment variables in path.
// "~user" forms are left alone.
func ExpandPath(path string) (string, error) {
	if path == "~" {
		return HomeDirectory()
	}

	if len(path) > 1 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator) {
		home, err := HomeDirectory()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}

	return os.ExpandEnv(path), nil
}

// AbsolutePath expands path and makes it absolute against the working
// directory
func AbsolutePath(path string) (string, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidArgument, "cannot resolve path %s", path)
	}
	return abs, nil
}
