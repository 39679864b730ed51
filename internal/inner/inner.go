// Package inner holds the closed set of query-layer error variants.
//
// Variants are internal so that the public facade can grow or change them
// without breaking callers. Code in this module recovers a variant from a
// facade error with As.
package inner

import (
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/jmgilman/go/query/status"
	"github.com/jmgilman/go/query/trace"
)

// Kind tags the variant of an Error.
type Kind int

const (
	// KindExecuteFunction wraps a failure raised by the execution framework.
	KindExecuteFunction Kind = iota + 1

	// KindFromScalarValue wraps a type-system failure converting a scalar value
	// into a vector.
	KindFromScalarValue

	// KindIntoVector wraps a type-system failure converting an array of a given
	// data type into a vector.
	KindIntoVector

	// KindCreateAccumulator reports an aggregate accumulator that could not be
	// built.
	KindCreateAccumulator

	// KindDowncastVector reports a vector that is not of the expected concrete
	// type.
	KindDowncastVector
)

var kindNames = map[Kind]string{
	KindExecuteFunction:   "ExecuteFunction",
	KindFromScalarValue:   "FromScalarValue",
	KindIntoVector:        "IntoVector",
	KindCreateAccumulator: "CreateAccumulator",
	KindDowncastVector:    "DowncastVector",
}

// String returns the variant name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// delegates reports whether the variant forwards classification and trace to
// its source.
func (k Kind) delegates() bool {
	return k == KindFromScalarValue || k == KindIntoVector
}

// Error is one query-layer failure. Exactly one Kind describes it and the
// payload fields that kind does not use are zero.
type Error struct {
	kind     Kind
	source   error
	dataType arrow.DataType
	message  string

	// trace is set only for kinds that originate locally.
	trace *trace.Trace
}

var _ status.Ext = (*Error)(nil)

// ExecuteFunction wraps an execution framework error and captures a trace.
// Returns nil if err is nil.
func ExecuteFunction(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:   KindExecuteFunction,
		source: err,
		trace:  trace.Capture(),
	}
}

// FromScalarValue wraps a type-system error raised while converting a scalar.
// The source keeps ownership of the trace.
// Returns nil if err is nil.
func FromScalarValue(err status.Classifier) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:   KindFromScalarValue,
		source: err,
	}
}

// IntoVector wraps a type-system error raised while converting an array of
// dataType. The source keeps ownership of the trace.
// Returns nil if err is nil.
func IntoVector(err status.Classifier, dataType arrow.DataType) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:     KindIntoVector,
		source:   err,
		dataType: dataType,
	}
}

// CreateAccumulator reports an accumulator construction failure.
func CreateAccumulator(msg string) *Error {
	return &Error{
		kind:    KindCreateAccumulator,
		message: msg,
		trace:   trace.Capture(),
	}
}

// DowncastVector reports a vector downcast failure.
func DowncastVector(msg string) *Error {
	return &Error{
		kind:    KindDowncastVector,
		message: msg,
		trace:   trace.Capture(),
	}
}

// Error returns the display text of the variant.
func (e *Error) Error() string {
	switch e.kind {
	case KindExecuteFunction:
		return fmt.Sprintf("Fail to execute function, source: %v", e.source)
	case KindFromScalarValue:
		return fmt.Sprintf("Fail to cast scalar value into vector: %v", e.source)
	case KindIntoVector:
		return fmt.Sprintf("Fail to cast arrow array into vector: %s, %v", dataTypeName(e.dataType), e.source)
	case KindCreateAccumulator:
		return fmt.Sprintf("Failed to create accumulator: %s", e.message)
	case KindDowncastVector:
		return fmt.Sprintf("Failed to downcast vector: %s", e.message)
	}
	return e.kind.String()
}

// StatusCode classifies the error by variant. Variants wrapping a type-system
// error report that error's code; every other variant is an engine fault.
func (e *Error) StatusCode() status.Code {
	if e.kind.delegates() {
		return status.CodeOf(e.source)
	}
	return status.CodeEngineExecuteQuery
}

// Trace returns the locally captured trace, or the source's trace for
// variants that wrap a type-system error.
func (e *Error) Trace() *trace.Trace {
	if e.kind.delegates() {
		return trace.Of(e.source)
	}
	return e.trace
}

// Kind returns the variant tag.
func (e *Error) Kind() Kind {
	return e.kind
}

// Source returns the wrapped foreign error, or nil for message-only variants.
func (e *Error) Source() error {
	return e.source
}

// DataType returns the attempted element type of an IntoVector error.
func (e *Error) DataType() arrow.DataType {
	return e.dataType
}

// Message returns the diagnostic of a message-only variant.
func (e *Error) Message() string {
	return e.message
}

// Unwrap returns the wrapped foreign error.
func (e *Error) Unwrap() error {
	return e.source
}

// As recovers the variant carried anywhere in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func dataTypeName(dt arrow.DataType) string {
	if dt == nil {
		return "<nil>"
	}
	return dt.String()
}
