package collect

import (
	"regexp"
	"strconv"
	"strings"
)

// Fields is the intermediate mapping produced by pattern extraction before
// a typed sub-record is built from it.
type Fields map[string]any

var (
	reInteger = regexp.MustCompile(`^-?\d+$`)
	reFloat   = regexp.MustCompile(`^-?\d*\.\d+$`)
)

// ExtractFields applies one pattern per field name against raw command
// output. The first capture group of each match is coerced: pure digit
// strings become ints, floating strings become float64, true/false becomes
// bool, anything else stays a trimmed string. Fields whose pattern does not
// match are left absent, never zeroed.
func ExtractFields(text string, patterns map[string]*regexp.Regexp) Fields {
	fields := make(Fields, len(patterns))
	for key, pattern := range patterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		fields[key] = coerce(m[1])
	}

	return fields
}

func coerce(val string) any {
	val = strings.TrimSpace(val)

	switch {
	case reInteger.MatchString(val):
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	case reFloat.MatchString(val):
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	case strings.EqualFold(val, "true"):
		return true
	case strings.EqualFold(val, "false"):
		return false
	}

	return val
}

// Int returns the field as a pointer, or nil when absent or not an int.
func (f Fields) Int(key string) *int {
	if v, ok := f[key].(int); ok {
		return &v
	}
	return nil
}

// Float returns the field as a pointer, accepting ints as well.
func (f Fields) Float(key string) *float64 {
	switch v := f[key].(type) {
	case float64:
		return &v
	case int:
		fv := float64(v)
		return &fv
	}
	return nil
}

// Bool returns the field as a pointer, or nil when absent or not a bool.
func (f Fields) Bool(key string) *bool {
	if v, ok := f[key].(bool); ok {
		return &v
	}
	return nil
}

// Str returns the field as a pointer, or nil when absent or not a string.
func (f Fields) Str(key string) *string {
	if v, ok := f[key].(string); ok {
		return &v
	}
	return nil
}
