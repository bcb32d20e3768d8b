package output

import (
	"github.com/arthur-debert/fileset/pkg/errors"
)

// Format selects how results are encoded
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatYAML, FormatTOML:
		return f, nil
	}
	return "", errors.Newf(errors.ErrInvalidArgument, "unknown output format %q", s).
		WithDetail("format", s)
}

// ColorMode controls styling of text output
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode name
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", errors.Newf(errors.ErrInvalidArgument, "unknown color mode %q", s).
		WithDetail("color", s)
}
