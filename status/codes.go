// Package status defines the classification codes shared by every engine
// component, the categories callers use to react to them, and the contract an
// error must satisfy to be classified without inspecting its message.
package status

// Code identifies the category of a failure independently of its message.
// Codes are string-based for debuggability and natural JSON serialization.
type Code string

const (
	// Common codes.

	// CodeSuccess indicates no failure. It is never attached to an error.
	CodeSuccess Code = "SUCCESS"

	// CodeUnknown indicates a failure that carries no classification.
	CodeUnknown Code = "UNKNOWN"

	// CodeUnsupported indicates the requested operation is not supported.
	CodeUnsupported Code = "UNSUPPORTED"

	// CodeUnexpected indicates a state that should be impossible was reached.
	CodeUnexpected Code = "UNEXPECTED"

	// CodeInternal indicates an internal error, usually a bug.
	CodeInternal Code = "INTERNAL"

	// CodeInvalidArguments indicates the caller supplied invalid arguments.
	CodeInvalidArguments Code = "INVALID_ARGUMENTS"

	// Query codes.

	// CodeInvalidSyntax indicates the query text could not be parsed.
	CodeInvalidSyntax Code = "INVALID_SYNTAX"

	// CodePlanQuery indicates the query could not be planned.
	CodePlanQuery Code = "PLAN_QUERY"

	// CodeEngineExecuteQuery indicates the query engine failed while executing.
	CodeEngineExecuteQuery Code = "ENGINE_EXECUTE_QUERY"

	// Catalog codes.

	// CodeTableAlreadyExists indicates a table with the same name exists.
	CodeTableAlreadyExists Code = "TABLE_ALREADY_EXISTS"

	// CodeTableNotFound indicates the referenced table does not exist.
	CodeTableNotFound Code = "TABLE_NOT_FOUND"

	// CodeTableColumnNotFound indicates the referenced column does not exist.
	CodeTableColumnNotFound Code = "TABLE_COLUMN_NOT_FOUND"

	// CodeTableColumnExists indicates a column with the same name exists.
	CodeTableColumnExists Code = "TABLE_COLUMN_EXISTS"

	// CodeDatabaseNotFound indicates the referenced database does not exist.
	CodeDatabaseNotFound Code = "DATABASE_NOT_FOUND"

	// Storage codes.

	// CodeStorageUnavailable indicates the storage layer is temporarily unavailable.
	CodeStorageUnavailable Code = "STORAGE_UNAVAILABLE"

	// Runtime codes.

	// CodeRuntimeResourcesExhausted indicates memory, threads or similar ran out.
	CodeRuntimeResourcesExhausted Code = "RUNTIME_RESOURCES_EXHAUSTED"

	// Auth codes.

	// CodeUserNotFound indicates the user does not exist.
	CodeUserNotFound Code = "USER_NOT_FOUND"

	// CodeInvalidAuthHeader indicates a malformed authentication header.
	CodeInvalidAuthHeader Code = "INVALID_AUTH_HEADER"

	// CodeAccessDenied indicates the user lacks permission for the operation.
	CodeAccessDenied Code = "ACCESS_DENIED"
)

// codes lists every code in declaration order.
var codes = []Code{
	CodeSuccess,
	CodeUnknown,
	CodeUnsupported,
	CodeUnexpected,
	CodeInternal,
	CodeInvalidArguments,
	CodeInvalidSyntax,
	CodePlanQuery,
	CodeEngineExecuteQuery,
	CodeTableAlreadyExists,
	CodeTableNotFound,
	CodeTableColumnNotFound,
	CodeTableColumnExists,
	CodeDatabaseNotFound,
	CodeStorageUnavailable,
	CodeRuntimeResourcesExhausted,
	CodeUserNotFound,
	CodeInvalidAuthHeader,
	CodeAccessDenied,
}

// Codes returns every defined code in declaration order.
func Codes() []Code {
	out := make([]Code, len(codes))
	copy(out, codes)
	return out
}

// Valid reports whether c is one of the defined codes.
func (c Code) Valid() bool {
	_, ok := defaultCategories[c]
	return ok
}

// String returns the code as a string.
func (c Code) String() string {
	return string(c)
}
