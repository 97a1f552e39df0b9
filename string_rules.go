package fieldmeta

import (
	"fmt"
	"regexp"
	"strings"
)

type notEmpty struct{}

func (notEmpty) Validate(field string, value any) error {
	s, ok := value.(string)
	if !ok {
		return typeMismatch(field, value)
	}
	if strings.TrimSpace(s) == "" {
		return &Violation{Field: field, Value: value, Message: "must not be empty"}
	}
	return nil
}

// NotEmpty requires a string with at least one non-whitespace character.
func NotEmpty() Validator {
	return notEmpty{}
}

type minLen struct{ min int }

func (m minLen) Validate(field string, value any) error {
	s, ok := value.(string)
	if !ok {
		return typeMismatch(field, value)
	}
	if len(s) < m.min {
		return &Violation{Field: field, Value: value, Message: fmt.Sprintf("must be at least %d characters long", m.min)}
	}
	return nil
}

// MinLen requires a string of at least min bytes.
func MinLen(min int) Validator {
	return minLen{min: min}
}

type maxLen struct{ max int }

func (m maxLen) Validate(field string, value any) error {
	s, ok := value.(string)
	if !ok {
		return typeMismatch(field, value)
	}
	if len(s) > m.max {
		return &Violation{Field: field, Value: value, Message: fmt.Sprintf("must be at most %d characters long", m.max)}
	}
	return nil
}

// MaxLen requires a string of at most max bytes.
func MaxLen(max int) Validator {
	return maxLen{max: max}
}

type match struct {
	re          *regexp.Regexp
	description string
}

func (m match) Validate(field string, value any) error {
	s, ok := value.(string)
	if !ok {
		return typeMismatch(field, value)
	}
	if !m.re.MatchString(s) {
		return &Violation{Field: field, Value: value, Message: fmt.Sprintf("must match %s pattern", m.description)}
	}
	return nil
}

// Match requires the string to match pattern. The pattern compiles once, at
// declaration time; an invalid pattern panics there. description names the
// pattern in the violation message.
func Match(pattern, description string) Validator {
	return match{re: regexp.MustCompile(pattern), description: description}
}
