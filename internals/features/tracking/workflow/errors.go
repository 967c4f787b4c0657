package workflow

import "fmt"

// NotFoundError: resource tidak ada ATAU milik user lain (keduanya tidak dibedakan).
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ConflictError: pasangan (owner, target) sudah dilacak.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ValidationError: status di luar enumerasi atau field tambahan tidak valid.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

func Conflict(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
