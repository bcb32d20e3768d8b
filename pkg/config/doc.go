// Package config handles configuration management for fileset.
// It layers embedded defaults, an optional TOML or YAML options file,
// FILESET_* environment variables and explicit overrides (command-line
// flags), in that order of increasing precedence.
//
// A loaded Config implements fileset.Request, so traversal options read
// here are coerced and validated exactly like any other request.
package config
