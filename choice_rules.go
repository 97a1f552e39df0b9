package fieldmeta

import "fmt"

type oneOf[T comparable] struct{ allowed []T }

func (o oneOf[T]) Validate(field string, value any) error {
	v, ok := value.(T)
	if !ok {
		return typeMismatch(field, value)
	}
	for _, a := range o.allowed {
		if v == a {
			return nil
		}
	}
	return &Violation{Field: field, Value: v, Message: fmt.Sprintf("must be one of: %v", o.allowed)}
}

// OneOf requires the value to equal one of the allowed values.
func OneOf[T comparable](allowed ...T) Validator {
	return oneOf[T]{allowed: allowed}
}
