// Package domainerrors defines the coded error type shared across services.
// Services return these so transport layers can translate them into HTTP
// responses without inspecting error strings.
package domainerrors

import "errors"

type Code string

const (
	CodeBadRequest Code = "bad_request"
	CodeValidation Code = "validation_error"
	CodeNotFound   Code = "not_found"
	CodeInternal   Code = "internal_error"
)

// Error carries a machine-readable code, an optional field identifier for
// validation failures, and a human-readable message.
type Error struct {
	Code    Code
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// New builds a coded error without a field identifier.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewField builds a coded error attributed to a single request field.
func NewField(code Code, field, message string) *Error {
	return &Error{Code: code, Field: field, Message: message}
}

// Is reports whether err is (or wraps) a domain error with the given code.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
