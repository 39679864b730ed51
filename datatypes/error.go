// Package datatypes defines the errors raised by the type system when values
// are converted between scalar, array and vector representations.
//
// Every error records an execution trace and exposes a classification code, so
// layers that wrap it can forward both instead of capturing their own.
package datatypes

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/jmgilman/go/query/status"
	"github.com/jmgilman/go/query/trace"
)

// Kind identifies the type-system failure.
type Kind string

const (
	// KindConversion indicates a value could not be converted.
	KindConversion Kind = "Conversion"

	// KindUnsupported indicates the operation is not supported for the type.
	KindUnsupported Kind = "Unsupported"

	// KindBadArrayAccess indicates an out-of-range array index.
	KindBadArrayAccess Kind = "BadArrayAccess"

	// KindCastType indicates a cast between two data types is impossible.
	KindCastType Kind = "CastType"
)

// Error is a type-system error.
type Error struct {
	kind    Kind
	message string
	trace   *trace.Trace
}

var _ status.Ext = (*Error)(nil)

// Conversion reports a failed value conversion described by from.
func Conversion(from string) *Error {
	return &Error{
		kind:    KindConversion,
		message: fmt.Sprintf("Failed to convert value, reason: %s", from),
		trace:   trace.Capture(),
	}
}

// Unsupported reports an operation the type system does not support.
func Unsupported(op string) *Error {
	return &Error{
		kind:    KindUnsupported,
		message: fmt.Sprintf("Unsupported operation: %s", op),
		trace:   trace.Capture(),
	}
}

// BadArrayAccess reports an index outside [0, size).
func BadArrayAccess(index, size int) *Error {
	return &Error{
		kind:    KindBadArrayAccess,
		message: fmt.Sprintf("Index out of bounds: %d, size: %d", index, size),
		trace:   trace.Capture(),
	}
}

// CastType reports that values of type from cannot be cast to type to.
func CastType(from, to arrow.DataType) *Error {
	return &Error{
		kind:    KindCastType,
		message: fmt.Sprintf("Failed to cast type %s to %s", from, to),
		trace:   trace.Capture(),
	}
}

// Error returns the error message.
func (e *Error) Error() string {
	return e.message
}

// Kind returns the kind of failure.
func (e *Error) Kind() Kind {
	return e.kind
}

// StatusCode classifies the failure.
func (e *Error) StatusCode() status.Code {
	switch e.kind {
	case KindUnsupported:
		return status.CodeUnsupported
	case KindBadArrayAccess:
		return status.CodeInvalidArguments
	default:
		return status.CodeInternal
	}
}

// Trace returns the trace captured when the error was raised.
func (e *Error) Trace() *trace.Trace {
	return e.trace
}
