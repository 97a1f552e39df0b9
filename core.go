package fieldmeta

import (
	"errors"
	"fmt"
	"strings"
)

// Validator is the capability a metadata element implements to take part in
// validation. Validate returns nil when the value is acceptable, or an error
// (normally a *Violation) naming the field and the rejected value.
type Validator interface {
	Validate(field string, value any) error
}

// ValidatorFunc adapts a plain function to the Validator capability.
type ValidatorFunc func(field string, value any) error

func (f ValidatorFunc) Validate(field string, value any) error {
	return f(field, value)
}

// Transformer is the capability a metadata element implements to normalize a
// value before the field's validators see it.
type Transformer interface {
	Transform(value any) any
}

// TransformFunc adapts a plain function to the Transformer capability.
type TransformFunc func(value any) any

func (f TransformFunc) Transform(value any) any {
	return f(value)
}

// Violation describes a single rejected field value.
type Violation struct {
	Field   string
	Value   any
	Message string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", v.Field, v.Message, v.Value)
}

// Violations represents a collection of field violations.
type Violations []*Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, v := range vs {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (vs *Violations) Add(v *Violation) {
	*vs = append(*vs, v)
}

func (vs Violations) Has(field string) bool {
	for _, v := range vs {
		if v.Field == field {
			return true
		}
	}
	return false
}

func (vs Violations) Get(field string) []string {
	var messages []string
	for _, v := range vs {
		if v.Field == field {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

func (vs Violations) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, v := range vs {
		if !seen[v.Field] {
			fields = append(fields, v.Field)
			seen[v.Field] = true
		}
	}
	return fields
}

func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

// ExtractViolations extracts Violations from an error.
func ExtractViolations(err error) Violations {
	if err == nil {
		return nil
	}

	var violations Violations
	if errors.As(err, &violations) {
		return violations
	}

	var violation *Violation
	if errors.As(err, &violation) {
		return Violations{violation}
	}

	return nil
}

func IsViolation(err error) bool {
	return ExtractViolations(err) != nil
}
