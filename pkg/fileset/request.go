package fileset

import (
	"net/url"
	"regexp"
	"strconv"
)

// Request is a loosely typed options source, such as a decoded query string
// or a layered configuration. Option reports whether key is present.
type Request interface {
	Option(key string) (interface{}, bool)
}

// MapRequest adapts a plain map to Request
type MapRequest map[string]interface{}

// Option implements Request
func (r MapRequest) Option(key string) (interface{}, bool) {
	value, ok := r[key]
	return value, ok
}

// QueryRequest adapts url.Values to Request. A key given once yields a
// string, a repeated key yields []string.
type QueryRequest url.Values

// Option implements Request
func (r QueryRequest) Option(key string) (interface{}, bool) {
	values, ok := r[key]
	if !ok || len(values) == 0 {
		return nil, false
	}
	if len(values) == 1 {
		return values[0], true
	}
	return append([]string(nil), values...), true
}

// requestOptions is the allow-list read from a Request, in application order
var requestOptions = []string{
	OptionLinks,
	OptionIgnore,
	OptionRecurse,
	OptionRecurseLimit,
	OptionChecksumType,
	OptionMaxFiles,
}

var digitsOnly = regexp.MustCompile(`^\d+$`)

func (f *Fileset) applyRequest(req Request) error {
	for _, key := range requestOptions {
		value, ok := lookupOption(req, key)
		if !ok || value == nil {
			continue
		}
		// Patterns are always strings, "007" must stay "007"
		if key != OptionIgnore {
			value = coerceRequestValue(value)
		}
		if err := f.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

// lookupOption tries the canonical key first, then its aliases
func lookupOption(req Request, key string) (interface{}, bool) {
	if value, ok := req.Option(key); ok {
		return value, true
	}
	for alias, canonical := range optionAliases {
		if canonical != key {
			continue
		}
		if value, ok := req.Option(alias); ok {
			return value, true
		}
	}
	return nil, false
}

// coerceRequestValue turns "true"/"false" into booleans and all-digit
// strings into integers. Anything else is returned unchanged.
func coerceRequestValue(value interface{}) interface{} {
	s, ok := value.(string)
	if !ok {
		return value
	}

	switch s {
	case "true":
		return true
	case "false":
		return false
	}

	if digitsOnly.MatchString(s) {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return s
}
