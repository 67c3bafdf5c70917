// Package apperror defines the error taxonomy shared by the client and the
// backend.
//
// Every failure that reaches a user is an *AppError whose Message is the one
// descriptive sentence to show. The wrapped sentinel tells callers what kind
// of failure it was, via errors.Is:
//
//	ErrValidation  input rejected before any network activity
//	ErrTransport   backend or model unreachable
//	ErrUpstream    non-success status or explicit error field from a lower layer
//	ErrExtraction  model output without a parseable JSON object
//	ErrNotFound    lookup miss (missing key, unknown omen)
//
// Storage parse failures are deliberately absent: they are recovered with a
// fallback value and never surfaced.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrTransport  = errors.New("transport error")
	ErrUpstream   = errors.New("upstream error")
	ErrExtraction = errors.New("extraction error")
)

type AppError struct {
	Err     error  // sentinel describing the kind of failure
	Message string // Human-readable error message
	Field   string // Optional: field causing the error
	cause   error  // Optional: underlying error, kept for logs and errors.Is
}

// Error returns the human-readable message.
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap exposes both the sentinel and the underlying cause, so
// errors.Is(err, ErrTransport) and errors.Is(err, context.DeadlineExceeded)
// can both match.
func (e *AppError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.cause}
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Transport reports that the remote side could not be reached. The message is
// the underlying error's text, verbatim.
func Transport(err error) *AppError {
	return &AppError{
		Err:     ErrTransport,
		Message: err.Error(),
		cause:   err,
	}
}

// Upstream reports a failure signalled by the remote side itself.
func Upstream(message string) *AppError {
	return &AppError{
		Err:     ErrUpstream,
		Message: message,
	}
}

// ExtractionFailed reports model output that did not yield a JSON object.
// cause may be nil.
func ExtractionFailed(message string, cause error) *AppError {
	return &AppError{
		Err:     ErrExtraction,
		Message: message,
		cause:   cause,
	}
}
