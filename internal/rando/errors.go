package rando

import "errors"

// Kind is a machine-readable sampler failure category.
type Kind string

const (
	KindUnknown             Kind = "UNKNOWN"
	KindNotFound            Kind = "NOT_FOUND"
	KindInvalidResource     Kind = "INVALID_RESOURCE"
	KindEmptyData           Kind = "EMPTY_DATA"
	KindInvalidArgument     Kind = "INVALID_ARGUMENT"
	KindInsufficientData    Kind = "INSUFFICIENT_DATA"
	KindInternalConsistency Kind = "INTERNAL_CONSISTENCY"
)

// Sentinels for errors.Is checks. Any *Error of the same kind matches.
var (
	ErrNotFound            = &Error{Kind: KindNotFound, Message: "database not found"}
	ErrInvalidResource     = &Error{Kind: KindInvalidResource, Message: "database is not a regular file"}
	ErrEmptyData           = &Error{Kind: KindEmptyData, Message: "database has no valid entries"}
	ErrInvalidArgument     = &Error{Kind: KindInvalidArgument, Message: "invalid argument"}
	ErrInsufficientData    = &Error{Kind: KindInsufficientData, Message: "not enough distinct entries"}
	ErrInternalConsistency = &Error{Kind: KindInternalConsistency, Message: "internal consistency violation"}
)

// Error is a sampler failure with enough context to display or log.
type Error struct {
	Kind     Kind              // Failure category
	Message  string            // Human-readable description
	Metadata map[string]string // Context such as path, available, requested
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

func newError(kind Kind, message string, metadata map[string]string, cause error) *Error {
	return &Error{
		Kind:     kind,
		Message:  message,
		Metadata: metadata,
		Cause:    cause,
	}
}

// KindOf returns the kind of the first *Error in err's chain,
// or KindUnknown when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
