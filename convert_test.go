package query

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/query/datatypes"
	"github.com/jmgilman/go/query/execerr"
	"github.com/jmgilman/go/query/status"
	"github.com/jmgilman/go/query/trace"
)

func TestToExecution(t *testing.T) {
	err := IntoVector(datatypes.Unsupported("test"), arrow.PrimitiveTypes.Int32)
	out := ToExecution(err)

	require.Equal(t, execerr.KindExternal, out.Kind())
	require.Equal(t, "External error: "+err.Error(), out.Error())

	// Classification and trace survive the boundary.
	require.Equal(t, err.StatusCode(), status.CodeOf(out))
	require.Same(t, err.Trace(), trace.Of(out))

	got, ok := FromExternal(out)
	require.True(t, ok)
	require.Same(t, err, got)
}

func TestToExecution_Nil(t *testing.T) {
	require.Nil(t, ToExecution(nil))
}

func TestFromExecution(t *testing.T) {
	kinds := []execerr.Kind{
		execerr.KindArrow,
		execerr.KindPlan,
		execerr.KindSchema,
		execerr.KindNotImplemented,
		execerr.KindInternal,
		execerr.KindExecution,
		execerr.KindResourcesExhausted,
	}

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			source := execerr.New(kind, "test")
			err := FromExecution(source)

			require.Equal(t, status.CodeEngineExecuteQuery, err.StatusCode())
			require.NotNil(t, err.Trace())
			require.True(t, stderrors.Is(err, source))
		})
	}
}

func TestFromExecution_Nil(t *testing.T) {
	require.Nil(t, FromExecution(nil))
}

func TestFromExecution_RoundTrip(t *testing.T) {
	// An error that went out and came back is reclassified as an engine fault,
	// but the original is still reachable.
	orig := FromScalarValue(datatypes.BadArrayAccess(2, 1))
	back := FromExecution(ToExecution(orig))

	require.Equal(t, status.CodeEngineExecuteQuery, back.StatusCode())
	require.True(t, stderrors.Is(back, orig))
	require.Contains(t, back.Error(), orig.Error())
}

func TestFromExternal(t *testing.T) {
	orig := DowncastVector("test")

	tests := []struct {
		name   string
		err    error
		wantOK bool
	}{
		{"nil", nil, false},
		{"plain error", stderrors.New("plain"), false},
		{"framework error", execerr.New(execerr.KindInternal, "test"), false},
		{"facade", orig, true},
		{"boxed facade", ToExecution(orig), true},
		{"fmt wrapped boxed facade", fmt.Errorf("stage 2: %w", ToExecution(orig)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromExternal(tt.err)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.Same(t, orig, got)
			} else {
				require.Nil(t, got)
			}
		})
	}
}
