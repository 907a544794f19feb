package services

import "fmt"

// ReferentialError reports a non-nullable reference that could not be
// resolved. It aborts the affected operation rather than being skipped.
type ReferentialError struct {
	Entity string
	ID     string
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// FieldError reports a missing or malformed field on a create request.
// One FieldError is produced per offending field, before any write.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
