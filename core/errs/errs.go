package errs

import (
	"errors"
	"fmt"
)

// ErrRouteInfeasible indicates no combination of charging stops can carry the
// vehicle to its destination with the current range and station network.
// Retrying with identical inputs yields the same result.
var ErrRouteInfeasible = errors.New("route infeasible")

// ValidationError reports a malformed planning input. It is returned before
// any computation starts and is never retried automatically.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
