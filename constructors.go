package query

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/jmgilman/go/query/internal/inner"
	"github.com/jmgilman/go/query/status"
)

// ExecuteFunction wraps an error raised by the execution framework.
// The result is always classified as status.CodeEngineExecuteQuery and carries
// a trace captured here.
//
// Returns nil if err is nil.
//
// Example:
//
//	batch, err := plan.Execute(ctx)
//	if err != nil {
//	    return query.ExecuteFunction(err)
//	}
func ExecuteFunction(err error) Error {
	return Wrap(inner.ExecuteFunction(err))
}

// FromScalarValue wraps a type-system error raised while converting a scalar
// value into a vector. Classification and trace are those of err.
//
// Returns nil if err is nil.
func FromScalarValue(err status.Classifier) Error {
	return Wrap(inner.FromScalarValue(err))
}

// IntoVector wraps a type-system error raised while converting an array of
// dataType into a vector. Classification and trace are those of err.
//
// Returns nil if err is nil.
//
// Example:
//
//	vec, err := vectors.FromArray(arr)
//	if err != nil {
//	    return nil, query.IntoVector(err, arr.DataType())
//	}
func IntoVector(err status.Classifier, dataType arrow.DataType) Error {
	return Wrap(inner.IntoVector(err, dataType))
}

// CreateAccumulator reports an aggregate accumulator that could not be built.
//
// Example:
//
//	if len(args) == 0 {
//	    return nil, query.CreateAccumulator("missing required column")
//	}
func CreateAccumulator(msg string) Error {
	return Wrap(inner.CreateAccumulator(msg))
}

// CreateAccumulatorf is CreateAccumulator with a formatted message.
func CreateAccumulatorf(format string, args ...interface{}) Error {
	return Wrap(inner.CreateAccumulator(fmt.Sprintf(format, args...)))
}

// DowncastVector reports a vector that is not of the expected concrete type.
func DowncastVector(msg string) Error {
	return Wrap(inner.DowncastVector(msg))
}

// DowncastVectorf is DowncastVector with a formatted message.
func DowncastVectorf(format string, args ...interface{}) Error {
	return Wrap(inner.DowncastVector(fmt.Sprintf(format, args...)))
}
