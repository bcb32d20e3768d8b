package config

import (
	"github.com/arthur-debert/fileset/pkg/errors"
)

// Settings holds the non-traversal configuration used by the CLI
type Settings struct {
	Output OutputSettings `koanf:"output"`
	Log    LogSettings    `koanf:"log"`
}

// OutputSettings controls rendering
type OutputSettings struct {
	Format string `koanf:"format"`
	Color  string `koanf:"color"`
}

// LogSettings controls log file rotation
type LogSettings struct {
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
}

// Validate checks the enumerated settings
func (s Settings) Validate() error {
	switch s.Output.Format {
	case "text", "yaml", "toml":
	default:
		return errors.Newf(errors.ErrConfigValid, "invalid output format %q", s.Output.Format).
			WithDetail("format", s.Output.Format)
	}

	switch s.Output.Color {
	case "auto", "always", "never":
	default:
		return errors.Newf(errors.ErrConfigValid, "invalid color mode %q", s.Output.Color).
			WithDetail("color", s.Output.Color)
	}
	return nil
}
