// Package apperr carries the error kinds that cross the service/handler
// boundary. Resolvers raise NotFound, policy checks raise Forbidden, input
// checks raise Validation; handlers map them to HTTP statuses. Resolution
// always runs before authorization, so a NotFound for the target (or any of
// its ancestors) always wins over a Forbidden for the same request.
package apperr

import "errors"

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NotFound(message string) error {
	return &NotFoundError{Message: message}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

func Forbidden(message string) error {
	return &ForbiddenError{Message: message}
}

func IsForbidden(err error) bool {
	var fb *ForbiddenError
	return errors.As(err, &fb)
}

// ValidationError reports malformed or referentially broken input. Field is
// set when the problem originates from a single request field and empty for
// request-level problems.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func Validation(message string) error {
	return &ValidationError{Message: message}
}

func FieldValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
