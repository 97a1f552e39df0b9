package fieldmeta

import (
	"errors"
	"fmt"
	"slices"
)

// Values holds a model instance's field values keyed by field name.
type Values map[string]any

// Schema is the declaration-order set of validated fields for one model type.
// Build it once, typically in a package-level var next to the type it
// describes; a Schema is immutable and safe for concurrent use.
type Schema struct {
	fields []Field
}

// New builds a Schema from field declarations. Duplicate field names are a
// programmer error at type-declaration time and panic immediately.
func New(fields ...Field) *Schema {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.name]; dup {
			panic(fmt.Sprintf("fieldmeta: duplicate field %q", f.name))
		}
		seen[f.name] = struct{}{}
	}
	return &Schema{fields: slices.Clone(fields)}
}

// Fields returns the declared fields in declaration order.
func (s *Schema) Fields() []Field {
	return slices.Clone(s.fields)
}

// Validate applies every field's attached validators to the corresponding
// entry in vals, fields in declaration order, validators in attachment order.
// Transformer metadata runs before the field's validators, and the
// transformed value is what the validators see. The first failing validator
// settles a field; remaining fields are still checked, and all per-field
// violations come back as a single Violations error. A field with no
// validator metadata never fails, whatever its value.
func (s *Schema) Validate(vals Values) error {
	_, err := s.Clean(vals)
	return err
}

// Clean is Validate plus the normalized values: the returned Values holds
// every declared field's post-transform value. vals itself is not mutated.
func (s *Schema) Clean(vals Values) (Values, error) {
	cleaned := make(Values, len(s.fields))
	var violations Violations

	for _, f := range s.fields {
		value := vals[f.name]
		for _, t := range f.meta.Transformers() {
			value = t.Transform(value)
		}
		cleaned[f.name] = value

		for _, v := range f.meta.Validators() {
			if err := v.Validate(f.name, value); err != nil {
				violations = append(violations, asViolation(f.name, value, err))
				break
			}
		}
	}

	if violations.IsEmpty() {
		return cleaned, nil
	}
	return cleaned, violations
}

// asViolation keeps the reported field and value authoritative even when a
// custom validator returns a bare error.
func asViolation(field string, value any, err error) *Violation {
	var violation *Violation
	if errors.As(err, &violation) {
		return violation
	}
	return &Violation{Field: field, Value: value, Message: err.Error()}
}
