package query

import (
	"errors"

	"github.com/jmgilman/go/query/execerr"
)

// ToExecution boxes err as an external error of the execution framework.
// The framework treats it as an opaque cause; FromExternal recovers it on the
// other side. Returns nil if err is nil.
func ToExecution(err Error) *execerr.Error {
	if err == nil {
		return nil
	}
	return execerr.External(err)
}

// FromExecution wraps a framework error. The result is classified as
// status.CodeEngineExecuteQuery whatever the framework's kind.
// Returns nil if err is nil.
func FromExecution(err *execerr.Error) Error {
	if err == nil {
		return nil
	}
	return ExecuteFunction(err)
}

// FromExternal finds an Error anywhere in err's chain, typically one that was
// boxed by ToExecution and returned by the framework.
func FromExternal(err error) (Error, bool) {
	var e Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
