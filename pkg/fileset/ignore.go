package fileset

import (
	"path/filepath"
	"strings"
)

// shouldIgnore reports whether the base name matches any ignore pattern.
// As in the shell, a leading dot must be matched by a literal dot at the
// start of the pattern: "*" and "?" never match it, and neither do "[.]git"
// or `\.git`. Use ".git" or ".*" to ignore dot-names.
func (f *Fileset) shouldIgnore(name string) bool {
	for _, pattern := range f.ignore {
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(pattern, ".") {
			continue
		}
		// filepath.Match only fails on malformed patterns, which never match
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
