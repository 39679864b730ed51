package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategory_IsRetryable(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		want     bool
	}{
		{
			name:     "retryable category",
			category: CategoryRetryable,
			want:     true,
		},
		{
			name:     "user category",
			category: CategoryUser,
			want:     false,
		},
		{
			name:     "internal category",
			category: CategoryInternal,
			want:     false,
		},
		{
			name:     "unknown category",
			category: Category("UNKNOWN"),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.category.IsRetryable())
		})
	}
}

func TestCode_Category(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want Category
	}{
		{
			name: "retryable - storage unavailable",
			code: CodeStorageUnavailable,
			want: CategoryRetryable,
		},
		{
			name: "retryable - resources exhausted",
			code: CodeRuntimeResourcesExhausted,
			want: CategoryRetryable,
		},
		{
			name: "user - invalid syntax",
			code: CodeInvalidSyntax,
			want: CategoryUser,
		},
		{
			name: "user - table not found",
			code: CodeTableNotFound,
			want: CategoryUser,
		},
		{
			name: "user - unsupported",
			code: CodeUnsupported,
			want: CategoryUser,
		},
		{
			name: "internal - engine execute query",
			code: CodeEngineExecuteQuery,
			want: CategoryInternal,
		},
		{
			name: "internal - internal",
			code: CodeInternal,
			want: CategoryInternal,
		},
		{
			name: "internal - unknown",
			code: CodeUnknown,
			want: CategoryInternal,
		},
		{
			name: "undefined code - safe default",
			code: Code("NOT_A_CODE"),
			want: CategoryInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.code.Category())
		})
	}
}

func TestCodes_AllCategorized(t *testing.T) {
	all := Codes()
	require.Len(t, defaultCategories, len(all))

	seen := make(map[Code]bool, len(all))
	for _, code := range all {
		require.True(t, code.Valid(), "code %s has no category", code)
		require.False(t, seen[code], "code %s listed twice", code)
		seen[code] = true
	}
}

func TestCodes_ReturnsCopy(t *testing.T) {
	all := Codes()
	all[0] = Code("MUTATED")

	require.Equal(t, CodeSuccess, Codes()[0])
}

func TestCode_Valid(t *testing.T) {
	require.True(t, CodeEngineExecuteQuery.Valid())
	require.False(t, Code("").Valid())
	require.False(t, Code("engine_execute_query").Valid())
}
