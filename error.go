package query

import (
	"encoding/json"

	"github.com/jmgilman/go/query/internal/inner"
	"github.com/jmgilman/go/query/status"
	"github.com/jmgilman/go/query/trace"
)

// Error is the single error type the query layer returns.
//
// Error exposes classification and trace only; the variant behind it is not
// part of the API so new failure kinds can be added without breaking callers.
type Error interface {
	error

	// StatusCode returns the classification code of the failure.
	StatusCode() status.Code

	// Trace returns the execution trace captured when the failure was first
	// raised, or nil if none is available.
	Trace() *trace.Trace

	// Unwrap returns the underlying variant for errors.Is and errors.As
	// compatibility.
	Unwrap() error
}

// opaqueError is the concrete implementation of Error.
// It is private to enforce construction through package functions.
type opaqueError struct {
	inner *inner.Error
}

var _ status.Ext = (*opaqueError)(nil)

// Wrap hides a variant behind the Error facade.
// Returns nil if e is nil.
func Wrap(e *inner.Error) Error {
	if e == nil {
		return nil
	}
	return &opaqueError{inner: e}
}

// Error returns the display text of the wrapped variant.
func (e *opaqueError) Error() string {
	return e.inner.Error()
}

// StatusCode returns the classification of the wrapped variant.
func (e *opaqueError) StatusCode() status.Code {
	return e.inner.StatusCode()
}

// Trace returns the trace of the wrapped variant.
func (e *opaqueError) Trace() *trace.Trace {
	return e.inner.Trace()
}

// Unwrap returns the wrapped variant.
func (e *opaqueError) Unwrap() error {
	return e.inner
}

// MarshalJSON implements json.Marshaler so an Error can be embedded directly
// in API responses. The trace is never serialized.
func (e *opaqueError) MarshalJSON() ([]byte, error) {
	return json.Marshal(status.ToJSON(e))
}
