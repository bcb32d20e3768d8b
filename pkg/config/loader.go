package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/fileset/pkg/errors"
	"github.com/arthur-debert/fileset/pkg/fileset"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the prefix of environment variables read by Load
const DefaultEnvPrefix = "FILESET_"

// LoadOptions selects the sources Load reads
type LoadOptions struct {
	// File is an optional .toml, .yaml or .yml options file
	File string

	// EnvPrefix defaults to DefaultEnvPrefix
	EnvPrefix string

	// Overrides take precedence over every other source
	Overrides map[string]interface{}
}

// Config is the merged configuration
type Config struct {
	k        *koanf.Koanf
	Settings Settings
}

var _ fileset.Request = (*Config)(nil)

// Load merges all configuration sources
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Options file
	if opts.File != "" {
		parser, err := parserFor(opts.File)
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(opts.File); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load options file %s", opts.File)
		}
		if err := k.Load(file.Provider(opts.File), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse options file %s", opts.File)
		}
	}

	// 3. Environment
	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	envK := koanf.New(".")
	if err := envK.Load(env.Provider(prefix, ".", func(s string) string {
		return envKey(prefix, s)
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}
	// Lists can't be expressed in a variable, so FILESET_IGNORE is comma separated
	if raw, ok := envK.Get(fileset.OptionIgnore).(string); ok {
		if err := envK.Set(fileset.OptionIgnore, splitList(raw)); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to split ignore list")
		}
	}
	if err := k.Merge(envK); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to merge env vars")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 5. Unmarshal presentation settings
	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &Config{k: k, Settings: settings}, nil
}

// Option implements fileset.Request
func (c *Config) Option(key string) (interface{}, bool) {
	if !c.k.Exists(key) {
		return nil, false
	}
	return c.k.Get(key), true
}

// String returns a string value by koanf path
func (c *Config) String(path string) string {
	return c.k.String(path)
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	}
	return nil, errors.Newf(errors.ErrConfigParse, "unsupported options file %s, expected .toml, .yaml or .yml", path).
		WithDetail("path", path)
}

// envKey maps FILESET_RECURSELIMIT to recurselimit and FILESET_OUTPUT_FORMAT
// to output.format
func envKey(prefix, name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, prefix))
	if section, rest, ok := strings.Cut(key, "_"); ok && (section == "output" || section == "log") {
		return section + "." + rest
	}
	return key
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
