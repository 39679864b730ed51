// Package execerr defines the generic error raised by the query execution
// framework.
//
// The framework knows nothing about classification codes. Failures from other
// components reach it boxed in an External error and are treated as opaque
// causes; handlers that know the concrete cause type recover it with errors.As.
package execerr

import "fmt"

// Kind identifies which part of the framework raised an error.
type Kind string

const (
	// KindArrow indicates a failure in the columnar compute layer.
	KindArrow Kind = "Arrow"

	// KindPlan indicates a failure while building or optimizing a plan.
	KindPlan Kind = "Plan"

	// KindSchema indicates a schema mismatch or missing field.
	KindSchema Kind = "Schema"

	// KindNotImplemented indicates the feature is not implemented.
	KindNotImplemented Kind = "NotImplemented"

	// KindInternal indicates a bug in the framework.
	KindInternal Kind = "Internal"

	// KindExecution indicates a failure while running a plan.
	KindExecution Kind = "Execution"

	// KindResourcesExhausted indicates a memory or similar limit was hit.
	KindResourcesExhausted Kind = "ResourcesExhausted"

	// KindExternal indicates a failure raised outside the framework.
	KindExternal Kind = "External"
)

// display holds the prefix rendered before each kind's message.
var display = map[Kind]string{
	KindArrow:              "Arrow error",
	KindPlan:               "Error during planning",
	KindSchema:             "Schema error",
	KindNotImplemented:     "This feature is not implemented",
	KindInternal:           "Internal error",
	KindExecution:          "Execution error",
	KindResourcesExhausted: "Resources exhausted",
	KindExternal:           "External error",
}

// Error is the framework's generic error.
type Error struct {
	kind    Kind
	message string
	cause   error
}

// New creates an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Newf creates an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// External boxes a foreign error so it can travel through the framework.
// Returns nil if err is nil.
func External(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{kind: KindExternal, cause: err}
}

// Error returns "<kind display>: <message>", or "External error: <cause>" for
// boxed foreign errors.
func (e *Error) Error() string {
	prefix, ok := display[e.kind]
	if !ok {
		prefix = string(e.kind)
	}
	if e.kind == KindExternal && e.cause != nil {
		return fmt.Sprintf("%s: %v", prefix, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Kind returns the kind of the error.
func (e *Error) Kind() Kind {
	return e.kind
}

// Message returns the message. External errors have no message of their own.
func (e *Error) Message() string {
	return e.message
}

// Unwrap returns the boxed foreign error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}
