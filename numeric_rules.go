package fieldmeta

import (
	"fmt"
	"math"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type gt[T Numeric] struct{ min T }

func (g gt[T]) Validate(field string, value any) error {
	v, ok := value.(T)
	if !ok {
		return typeMismatch(field, value)
	}
	if v <= g.min {
		return &Violation{Field: field, Value: v, Message: fmt.Sprintf("must be greater than %v", g.min)}
	}
	return nil
}

// Gt requires the value to be strictly greater than min. The value's dynamic
// type must match T exactly; anything else is reported as a violation.
func Gt[T Numeric](min T) Validator {
	return gt[T]{min: min}
}

type ge[T Numeric] struct{ min T }

func (g ge[T]) Validate(field string, value any) error {
	v, ok := value.(T)
	if !ok {
		return typeMismatch(field, value)
	}
	if v < g.min {
		return &Violation{Field: field, Value: v, Message: fmt.Sprintf("must be at least %v", g.min)}
	}
	return nil
}

// Ge requires the value to be greater than or equal to min.
func Ge[T Numeric](min T) Validator {
	return ge[T]{min: min}
}

type lt[T Numeric] struct{ max T }

func (l lt[T]) Validate(field string, value any) error {
	v, ok := value.(T)
	if !ok {
		return typeMismatch(field, value)
	}
	if v >= l.max {
		return &Violation{Field: field, Value: v, Message: fmt.Sprintf("must be less than %v", l.max)}
	}
	return nil
}

// Lt requires the value to be strictly less than max.
func Lt[T Numeric](max T) Validator {
	return lt[T]{max: max}
}

type le[T Numeric] struct{ max T }

func (l le[T]) Validate(field string, value any) error {
	v, ok := value.(T)
	if !ok {
		return typeMismatch(field, value)
	}
	if v > l.max {
		return &Violation{Field: field, Value: v, Message: fmt.Sprintf("must be at most %v", l.max)}
	}
	return nil
}

// Le requires the value to be less than or equal to max.
func Le[T Numeric](max T) Validator {
	return le[T]{max: max}
}

type positive struct{}

func (positive) Validate(field string, value any) error {
	f, ok := toFloat64(value)
	if !ok {
		return typeMismatch(field, value)
	}
	if f <= 0 {
		return &Violation{Field: field, Value: value, Message: "must be positive"}
	}
	return nil
}

// Positive requires a numeric value strictly greater than zero. It accepts
// any built-in numeric kind, so one Positive() works for int and float fields
// alike.
func Positive() Validator {
	return positive{}
}

type even struct{}

func (even) Validate(field string, value any) error {
	n, ok := toInt64(value)
	if !ok {
		return typeMismatch(field, value)
	}
	if n%2 != 0 {
		return &Violation{Field: field, Value: value, Message: "must be an even number"}
	}
	return nil
}

// Even requires an integer value divisible by two.
func Even() Validator {
	return even{}
}

type multipleOf struct{ n int64 }

func (m multipleOf) Validate(field string, value any) error {
	v, ok := toInt64(value)
	if !ok {
		return typeMismatch(field, value)
	}
	if v%m.n != 0 {
		return &Violation{Field: field, Value: value, Message: fmt.Sprintf("must be a multiple of %d", m.n)}
	}
	return nil
}

// MultipleOf requires an integer value divisible by n. Panics if n is zero.
func MultipleOf(n int64) Validator {
	if n == 0 {
		panic("fieldmeta: MultipleOf requires a non-zero divisor")
	}
	return multipleOf{n: n}
}

func typeMismatch(field string, value any) *Violation {
	return &Violation{Field: field, Value: value, Message: fmt.Sprintf("unexpected value type %T", value)}
}

// toInt64 widens the built-in integer kinds. Named types do not match; use
// the generic comparison validators for those.
func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	}
	return 0, false
}

func toFloat64(value any) (float64, bool) {
	if n, ok := toInt64(value); ok {
		return float64(n), true
	}
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
