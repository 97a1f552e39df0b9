package fieldmeta

import (
	"strings"

	"github.com/google/uuid"
)

type uuidString struct{}

func (uuidString) Validate(field string, value any) error {
	s, ok := value.(string)
	if !ok {
		return typeMismatch(field, value)
	}

	violation := &Violation{Field: field, Value: value, Message: "must be a valid UUID"}

	if strings.TrimSpace(s) == "" {
		return violation
	}

	// Fast rejection: check length and hyphen positions before parsing
	if len(s) != 36 {
		return violation
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return violation
	}

	if _, err := uuid.Parse(s); err != nil {
		return violation
	}
	return nil
}

// UUIDString requires a string in standard UUID format.
func UUIDString() Validator {
	return uuidString{}
}
