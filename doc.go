// Package query provides the error type returned by the query layer.
//
// Failures raised while executing functions, converting scalars and arrays into
// vectors, or building aggregate accumulators are captured into a small closed
// set of variants. Each variant carries a classification code and, where one is
// available, the execution trace recorded when the failure originated. Callers
// see a single opaque Error so the variant set can evolve without breaking them.
//
// # Quick Start
//
// Wrapping a framework failure:
//
//	batch, err := plan.Execute(ctx)
//	if err != nil {
//	    return query.ExecuteFunction(err)
//	}
//
// Wrapping a type-system failure:
//
//	vec, err := vectors.FromArray(arr)
//	if err != nil {
//	    return nil, query.IntoVector(err, arr.DataType())
//	}
//
// Reporting a local failure:
//
//	return nil, query.CreateAccumulatorf("expected %d arguments, got %d", 2, len(args))
//
// Reacting to a failure:
//
//	switch {
//	case status.IsUserError(err):
//	    // Report to the client
//	case status.IsRetryable(err):
//	    // Let the scheduler decide
//	}
//
// # Classification
//
// Classification is decided by variant, never by message text:
//
//   - ExecuteFunction, CreateAccumulator, DowncastVector: always
//     status.CodeEngineExecuteQuery. These are engine faults no caller input
//     could produce.
//   - FromScalarValue, IntoVector: the code of the wrapped type-system error,
//     which knows better whether the caller's data was at fault.
//
// # Traces
//
// ExecuteFunction, CreateAccumulator and DowncastVector capture a trace when
// they are called. FromScalarValue and IntoVector return the trace of the
// error they wrap; no second trace is captured.
//
// # Crossing the Execution Framework
//
// ToExecution boxes an Error as an external error of the framework. Whatever
// the framework returns can be inspected with status.CodeOf, trace.Of or
// FromExternal:
//
//	_, err := engine.Run(ctx, plan) // may return execerr.External(query.Error)
//	if qErr, ok := query.FromExternal(err); ok {
//	    code := qErr.StatusCode()
//	}
//
// FromExecution goes the other way and wraps a framework error as
// ExecuteFunction.
//
// # Standard Library Compatibility
//
// Every error in this module supports errors.Is, errors.As and errors.Unwrap,
// so the original framework or type-system error remains reachable:
//
//	var dtErr *datatypes.Error
//	if errors.As(err, &dtErr) {
//	    kind := dtErr.Kind()
//	}
//
// This layer never logs and never retries. Every error is returned to the
// caller.
package query
