package fieldmeta

import "strings"

type trim struct{}

func (trim) Transform(value any) any {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return value
}

// Trim strips leading and trailing whitespace from string values before
// validation. Non-string values pass through untouched.
func Trim() Transformer {
	return trim{}
}

type lower struct{}

func (lower) Transform(value any) any {
	if s, ok := value.(string); ok {
		return strings.ToLower(s)
	}
	return value
}

// Lower lowercases string values before validation. Non-string values pass
// through untouched.
func Lower() Transformer {
	return lower{}
}
