package fileset

import (
	"fmt"
	"math"
	"strconv"

	"github.com/arthur-debert/fileset/pkg/errors"
	"github.com/arthur-debert/fileset/pkg/types"
)

// Option keys accepted by Set and by the Request adapter
const (
	OptionIgnore       = "ignore"
	OptionLinks        = "links"
	OptionRecurse      = "recurse"
	OptionRecurseLimit = "recurselimit"
	OptionChecksumType = "checksum_type"
	OptionMaxFiles     = "max_files"
)

type optionSetter func(f *Fileset, value interface{}) error

// optionSetters is the complete set of configurable keys. A key missing
// here is rejected.
var optionSetters = map[string]optionSetter{
	OptionIgnore:       setIgnoreOption,
	OptionLinks:        setLinksOption,
	OptionRecurse:      setRecurseOption,
	OptionRecurseLimit: setRecurseLimitOption,
	OptionChecksumType: setChecksumTypeOption,
	OptionMaxFiles:     setMaxFilesOption,
}

// optionAliases maps alternate spellings to their canonical key
var optionAliases = map[string]string{
	"checksumType": OptionChecksumType,
	"maxFiles":     OptionMaxFiles,
}

func canonicalOption(key string) string {
	if canonical, ok := optionAliases[key]; ok {
		return canonical
	}
	return key
}

// Set assigns a single option by key, validating value
func (f *Fileset) Set(key string, value interface{}) error {
	setter, ok := optionSetters[canonicalOption(key)]
	if !ok {
		return errors.Newf(errors.ErrInvalidArgument, "invalid option %q", key).
			WithDetail("option", key)
	}
	return setter(f, value)
}

func setIgnoreOption(f *Fileset, value interface{}) error {
	switch v := value.(type) {
	case nil:
		f.SetIgnore()
	case string:
		f.SetIgnore(v)
	case []string:
		f.SetIgnore(v...)
	case []interface{}:
		patterns := make([]string, 0, len(v))
		for _, item := range v {
			// A list holding only nil means "no patterns"
			if item == nil {
				continue
			}
			pattern, err := ignorePattern(item)
			if err != nil {
				return err
			}
			patterns = append(patterns, pattern)
		}
		f.SetIgnore(patterns...)
	default:
		pattern, err := ignorePattern(v)
		if err != nil {
			return err
		}
		f.SetIgnore(pattern)
	}
	return nil
}

func ignorePattern(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	}
	// Coerced request values turn all-digit patterns into integers
	if n, ok := toInt(value); ok {
		return strconv.Itoa(n), nil
	}
	return "", invalidOptionValue(OptionIgnore, value)
}

func setLinksOption(f *Fileset, value interface{}) error {
	switch v := value.(type) {
	case types.LinksPolicy:
		return f.SetLinks(v)
	case string:
		return f.SetLinks(types.LinksPolicy(v))
	}
	return invalidOptionValue(OptionLinks, value)
}

func setRecurseOption(f *Fileset, value interface{}) error {
	if b, ok := value.(bool); ok {
		f.SetRecurse(b)
		return nil
	}
	if _, ok := toInt(value); ok {
		return errors.New(errors.ErrInvalidArgument, "fileset recurse parameter must not be a number anymore, please use recurselimit").
			WithDetail("recurse", value)
	}
	return invalidOptionValue(OptionRecurse, value)
}

func setRecurseLimitOption(f *Fileset, value interface{}) error {
	switch v := value.(type) {
	case types.RecurseLimit:
		return f.SetRecurseLimit(v)
	case string:
		if v == "infinite" || v == "inf" {
			return f.SetRecurseLimit(types.RecurseInfinite)
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return invalidOptionValue(OptionRecurseLimit, value)
		}
		return f.SetRecurseLimit(types.RecurseLimit(n))
	}

	n, ok := toInt(value)
	if !ok || n < 0 {
		return invalidOptionValue(OptionRecurseLimit, value)
	}
	return f.SetRecurseLimit(types.RecurseLimit(n))
}

func setChecksumTypeOption(f *Fileset, value interface{}) error {
	switch v := value.(type) {
	case types.ChecksumType:
		f.SetChecksumType(v)
	case string:
		f.SetChecksumType(types.ChecksumType(v))
	default:
		return invalidOptionValue(OptionChecksumType, value)
	}
	return nil
}

func setMaxFilesOption(f *Fileset, value interface{}) error {
	if s, ok := value.(string); ok {
		n, err := strconv.Atoi(s)
		if err != nil {
			return invalidOptionValue(OptionMaxFiles, value)
		}
		return f.SetMaxFiles(n)
	}

	n, ok := toInt(value)
	if !ok {
		return invalidOptionValue(OptionMaxFiles, value)
	}
	return f.SetMaxFiles(n)
}

func invalidOptionValue(key string, value interface{}) error {
	return errors.Newf(errors.ErrInvalidArgument, "invalid %s value %v (%T)", key, value, value).
		WithDetail("option", key).
		WithDetail("value", value)
}

// toInt converts any integer kind, or an integral float as decoded from
// JSON, to int
func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
	case float32:
		if float64(v) == math.Trunc(float64(v)) {
			return int(v), true
		}
	}
	return 0, false
}
