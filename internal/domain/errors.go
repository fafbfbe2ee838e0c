package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned whenever an entity cannot be located, including
// the case where it exists but belongs to a different user. Both cases must
// look identical to the caller.
var ErrNotFound = errors.New("resource not found")

// UnknownResourceError signals a resource name outside the registry's
// closed catalog. This is a caller programming error, not user input.
type UnknownResourceError struct {
	Resource string
}

func (e *UnknownResourceError) Error() string {
	return fmt.Sprintf("unsupported resume resource %q", e.Resource)
}

// MissingUserContextError signals that a user-scoped resource was requested
// without an authenticated owner.
type MissingUserContextError struct {
	Resource ResourceName
}

func (e *MissingUserContextError) Error() string {
	return fmt.Sprintf("resource %s requires a user context", e.Resource)
}

// InvalidDateError signals a date field that was unparseable or null where
// null is not allowed.
type InvalidDateError struct {
	Field  string
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date value for field %q: %s", e.Field, e.Reason)
}

// UnsupportedMediaError signals a media-collection payload aimed at an
// entity type that does not own a media collection.
type UnsupportedMediaError struct {
	Resource ResourceName
}

func (e *UnsupportedMediaError) Error() string {
	return fmt.Sprintf("media collections are not supported for resource %s", e.Resource)
}

// FieldTypeError signals a payload value whose JSON type cannot be coerced
// into the declared field kind.
type FieldTypeError struct {
	Field string
	Want  string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("field %q expects a %s value", e.Field, e.Want)
}

// ValidationError carries the complete field-to-messages mapping so the
// caller can render every violation at once.
type ValidationError struct {
	Violations map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("entity validation failed with %d violation(s)", len(e.Violations))
}
