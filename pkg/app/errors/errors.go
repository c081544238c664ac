// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError is used when an operation completed without error.
	CategoryNoError Category = iota
	// CategoryInvalidArgument The caller sent invalid input; rejected before any state mutation.
	CategoryInvalidArgument
	// CategoryArgumentLengthMismatch A batch call used parallel arrays of unequal length, or an empty batch.
	CategoryArgumentLengthMismatch
	// CategoryNotFound The referenced record does not exist.
	CategoryNotFound
	// CategoryAlreadyExecuted The payment has already been executed; idempotency guard.
	CategoryAlreadyExecuted
	// CategoryAlreadyBridged The schedule request has already been marked bridged; idempotency guard.
	CategoryAlreadyBridged
	// CategoryNotReady The readiness gate rejected execution because the scheduled time has not been reached.
	CategoryNotReady
	// CategoryUnauthorized The caller is not the authorized relay identity.
	CategoryUnauthorized
	// CategoryTransient A network or timeout failure; safe to retry with backoff.
	CategoryTransient
	// CategoryPermanent The ledger rejected the submission; retrying will not help.
	CategoryPermanent
	// CategoryGeneralError The service failed in an unexpected way.
	CategoryGeneralError
)

func (c Category) String() string {
	switch c {
	case CategoryInvalidArgument:
		return "CategoryInvalidArgument"
	case CategoryArgumentLengthMismatch:
		return "CategoryArgumentLengthMismatch"
	case CategoryNotFound:
		return "CategoryNotFound"
	case CategoryAlreadyExecuted:
		return "CategoryAlreadyExecuted"
	case CategoryAlreadyBridged:
		return "CategoryAlreadyBridged"
	case CategoryNotReady:
		return "CategoryNotReady"
	case CategoryUnauthorized:
		return "CategoryUnauthorized"
	case CategoryTransient:
		return "CategoryTransient"
	case CategoryPermanent:
		return "CategoryPermanent"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError represents service specific type that
// is used all over the services.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is implements the custom condition to check an error is equal to a service error
func (err ServiceError) Is(target error) bool {
	return err.Message == target.Error()
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category == cat {
		return true
	}
	return false
}

// IsRetryable reports whether the relay may retry the operation that
// produced the error. Only transient failures qualify.
func IsRetryable(err error) bool {
	return Is(err, CategoryTransient)
}

// GeneralError returns a general service error
// this error mesage sent to the user is "Internal Server Error"
// the error passed is logged in the logger
func GeneralError(err error) error {
	if err == nil {
		err = errors.New("internal server error")
	}
	return &ServiceError{
		Category: CategoryGeneralError,
		Message:  "Internal Server Error",
		Err:      err,
	}
}

// InvalidArgumentError returns an error with category InvalidArgument
// the error message provided is returned to the user
func InvalidArgumentError(err error, message string) error {
	if err == nil {
		err = errors.New("invalid argument: " + message)
	}
	return &ServiceError{
		Category: CategoryInvalidArgument,
		Message:  message,
		Err:      err,
	}
}

// ArgumentLengthMismatchError returns an error with category ArgumentLengthMismatch
func ArgumentLengthMismatchError(message string) error {
	return &ServiceError{
		Category: CategoryArgumentLengthMismatch,
		Message:  message,
		Err:      errors.New("argument length mismatch: " + message),
	}
}

// NotFoundError returns an error with category NotFound
// the error message provided is returned to the user
func NotFoundError(err error, message string) error {
	if err == nil {
		err = errors.New("not found: " + message)
	}
	return &ServiceError{
		Category: CategoryNotFound,
		Message:  message,
		Err:      err,
	}
}

// AlreadyExecutedError returns an error with category AlreadyExecuted
func AlreadyExecutedError(message string) error {
	return &ServiceError{
		Category: CategoryAlreadyExecuted,
		Message:  message,
		Err:      errors.New("already executed: " + message),
	}
}

// AlreadyBridgedError returns an error with category AlreadyBridged
func AlreadyBridgedError(message string) error {
	return &ServiceError{
		Category: CategoryAlreadyBridged,
		Message:  message,
		Err:      errors.New("already bridged: " + message),
	}
}

// NotReadyError returns an error with category NotReady
func NotReadyError(message string) error {
	return &ServiceError{
		Category: CategoryNotReady,
		Message:  message,
		Err:      errors.New("not ready: " + message),
	}
}

// UnauthorizedError returns an error with category Unauthorized
func UnauthorizedError(err error, message string) error {
	if err == nil {
		err = errors.New("unauthorized")
	}
	return &ServiceError{
		Category: CategoryUnauthorized,
		Message:  message,
		Err:      err,
	}
}

// TransientError returns an error with category Transient
// the error object provided is logged in logger
func TransientError(err error, message string) error {
	if err == nil {
		err = errors.New("transient failure: " + message)
	}
	return &ServiceError{
		Category: CategoryTransient,
		Message:  message,
		Err:      err,
	}
}

// PermanentError returns an error with category Permanent
// the error object provided is logged in logger
func PermanentError(err error, message string) error {
	if err == nil {
		err = errors.New("permanent failure: " + message)
	}
	return &ServiceError{
		Category: CategoryPermanent,
		Message:  message,
		Err:      err,
	}
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryInvalidArgument, CategoryArgumentLengthMismatch:
		return http.StatusBadRequest
	case CategoryNotFound:
		return http.StatusNotFound
	case CategoryAlreadyExecuted, CategoryAlreadyBridged:
		return http.StatusConflict
	case CategoryNotReady:
		return http.StatusTooEarly
	case CategoryUnauthorized:
		return http.StatusForbidden
	case CategoryTransient:
		return http.StatusServiceUnavailable
	case CategoryPermanent:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
