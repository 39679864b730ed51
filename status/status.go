package status

import (
	"errors"

	"github.com/jmgilman/go/query/trace"
)

// Classifier is the minimum an error must expose to be classified without
// inspecting its message. Errors raised by collaborating domains (such as the
// type system) must implement it to cross into this layer.
type Classifier interface {
	error

	// StatusCode returns the classification code of the error.
	StatusCode() Code
}

// Ext extends Classifier with access to the execution trace captured when the
// error was first raised.
type Ext interface {
	Classifier

	// Trace returns the execution trace, or nil if none is available.
	Trace() *trace.Trace
}

// CodeOf extracts the Code from an error.
// Returns CodeUnknown if the error is nil or nothing in its chain is a Classifier.
//
// The outermost Classifier in the chain wins.
//
// Example:
//
//	if status.CodeOf(err) == status.CodeTableNotFound {
//	    // Handle missing table
//	}
func CodeOf(err error) Code {
	if err == nil {
		return CodeUnknown
	}

	var c Classifier
	if errors.As(err, &c) {
		return c.StatusCode()
	}

	return CodeUnknown
}

// CategoryOf returns the Category of the error's code.
// Returns CategoryInternal if the error is nil or unclassified.
func CategoryOf(err error) Category {
	return CodeOf(err).Category()
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or unclassified (safe default).
func IsRetryable(err error) bool {
	return CategoryOf(err).IsRetryable()
}

// IsUserError returns true if the error blames the caller or its data.
func IsUserError(err error) bool {
	return CategoryOf(err).IsUser()
}
