package config

import (
	"strings"
)

// GenerateConfigContent returns the embedded defaults with every assignment
// commented out, ready to be saved as an options file
func GenerateConfigContent() string {
	lines := strings.Split(DefaultConfigContent(), "\n")
	for i, line := range lines {
		if isAssignment(strings.TrimSpace(line)) {
			lines[i] = "# " + line
		}
	}
	return strings.Join(lines, "\n")
}

// isAssignment skips blanks, comments and [section] headers
func isAssignment(trimmed string) bool {
	switch {
	case trimmed == "":
		return false
	case strings.HasPrefix(trimmed, "#"):
		return false
	case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
		return false
	}
	return true
}
