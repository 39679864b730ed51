// Package trace captures execution traces at the point an error is first raised.
//
// A Trace holds raw program counters recorded by github.com/pkg/errors; frames are
// only resolved to function names and file positions when the trace is formatted.
package trace

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Trace is a snapshot of the call stack taken when an error originated.
// A Trace is immutable and safe for concurrent use.
type Trace struct {
	stack pkgerrors.StackTrace
}

// Tracer is implemented by errors that carry their own Trace.
type Tracer interface {
	// Trace returns the trace, or nil if the error has none.
	Trace() *Trace
}

// stackTracer is the interface pkg/errors values implement.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Capture snapshots the stack of its caller. The first frame is the function
// that called Capture.
//
//go:noinline
func Capture() *Trace {
	st := pkgerrors.New("").(stackTracer).StackTrace()
	// Drop Capture itself.
	if len(st) > 0 {
		st = st[1:]
	}
	return &Trace{stack: st}
}

// FromStackTrace adopts a stack recorded by github.com/pkg/errors.
// Returns nil for an empty stack.
func FromStackTrace(st pkgerrors.StackTrace) *Trace {
	if len(st) == 0 {
		return nil
	}
	return &Trace{stack: st}
}

// Of returns the first trace found in err's chain.
//
// An error implementing Tracer contributes its own trace; an error created by
// github.com/pkg/errors contributes its recorded stack. Returns nil if err is nil
// or nothing in the chain carries a trace.
func Of(err error) *Trace {
	for err != nil {
		switch e := err.(type) {
		case Tracer:
			if t := e.Trace(); t != nil {
				return t
			}
		case stackTracer:
			if t := FromStackTrace(e.StackTrace()); t != nil {
				return t
			}
		}

		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		err = u.Unwrap()
	}
	return nil
}

// Len returns the number of frames.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.stack)
}

// Frames returns the recorded frames, innermost first.
func (t *Trace) Frames() pkgerrors.StackTrace {
	if t == nil {
		return nil
	}
	out := make(pkgerrors.StackTrace, len(t.stack))
	copy(out, t.stack)
	return out
}

// String renders one frame per line as "function\n\tfile:line".
func (t *Trace) String() string {
	if t == nil {
		return ""
	}
	return fmt.Sprintf("%+v", t.stack)
}

// Format implements fmt.Formatter using the verbs pkg/errors supports for stacks.
func (t *Trace) Format(s fmt.State, verb rune) {
	if t == nil {
		return
	}
	t.stack.Format(s, verb)
}
