package domain

import "fmt"

// Entity kind names used in error messages
const (
	KindPos     = "POS"
	KindUser    = "User"
	KindReview  = "Review"
	KindOsmNode = "OSM node"
)

// NotFoundError indicates that no record matches a lookup, either by ID
// or by a unique field.
type NotFoundError struct {
	Kind  string
	ID    uint
	Field string
	Value string
}

// NewNotFound creates a not-found error for a lookup by ID
func NewNotFound(kind string, id uint) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

// NewNotFoundByField creates a not-found error for a lookup by a unique field
func NewNotFoundByField(kind, field, value string) *NotFoundError {
	return &NotFoundError{Kind: kind, Field: field, Value: value}
}

func (e *NotFoundError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s with %s '%s' does not exist", e.Kind, e.Field, e.Value)
	}
	return fmt.Sprintf("%s with ID %d does not exist", e.Kind, e.ID)
}

// DuplicationError indicates that a write would duplicate a value in a
// field declared unique.
type DuplicationError struct {
	Kind  string
	Field string
	Value string
}

// NewDuplication creates a duplication error for a unique field
func NewDuplication(kind, field, value string) *DuplicationError {
	return &DuplicationError{Kind: kind, Field: field, Value: value}
}

func (e *DuplicationError) Error() string {
	return fmt.Sprintf("%s with %s '%s' already exists", e.Kind, e.Field, e.Value)
}

// MissingFieldError indicates that a required attribute of an externally
// sourced record is absent or unparsable.
type MissingFieldError struct {
	Kind  string
	ID    int64
	Field string
}

// NewMissingField creates a missing-field error for an external record
func NewMissingField(kind string, id int64, field string) *MissingFieldError {
	return &MissingFieldError{Kind: kind, ID: id, Field: field}
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s with ID %d does not have the required fields: field '%s' is missing", e.Kind, e.ID, e.Field)
}

// ValidationError indicates a business rule violation that is not a simple
// not-found or duplicate.
type ValidationError struct {
	Message string
}

// NewValidation creates a validation error with the given message
func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}
