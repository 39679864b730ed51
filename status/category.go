package status

// Category describes how a caller should treat a failure.
// It is a classification only; deciding whether and how to retry is left to
// the caller.
type Category string

const (
	// CategoryRetryable indicates a temporary failure that may succeed on retry.
	// Examples: storage unavailable, resources exhausted.
	CategoryRetryable Category = "RETRYABLE"

	// CategoryUser indicates the caller or its data is at fault.
	// Examples: invalid syntax, unknown table, invalid arguments.
	CategoryUser Category = "USER"

	// CategoryInternal indicates an engine fault or invariant violation that no
	// caller input could legitimately produce.
	CategoryInternal Category = "INTERNAL"
)

// IsRetryable returns true if the category indicates retry may succeed.
func (c Category) IsRetryable() bool {
	return c == CategoryRetryable
}

// IsUser returns true if the category blames the caller.
func (c Category) IsUser() bool {
	return c == CategoryUser
}

// defaultCategories maps every code to its category.
// Valid relies on this map holding exactly the defined codes.
var defaultCategories = map[Code]Category{
	// Retryable
	CodeStorageUnavailable:        CategoryRetryable,
	CodeRuntimeResourcesExhausted: CategoryRetryable,

	// Caller or data faults
	CodeUnsupported:         CategoryUser,
	CodeInvalidArguments:    CategoryUser,
	CodeInvalidSyntax:       CategoryUser,
	CodePlanQuery:           CategoryUser,
	CodeTableAlreadyExists:  CategoryUser,
	CodeTableNotFound:       CategoryUser,
	CodeTableColumnNotFound: CategoryUser,
	CodeTableColumnExists:   CategoryUser,
	CodeDatabaseNotFound:    CategoryUser,
	CodeUserNotFound:        CategoryUser,
	CodeInvalidAuthHeader:   CategoryUser,
	CodeAccessDenied:        CategoryUser,

	// Engine faults
	CodeSuccess:            CategoryInternal,
	CodeUnknown:            CategoryInternal,
	CodeUnexpected:         CategoryInternal,
	CodeInternal:           CategoryInternal,
	CodeEngineExecuteQuery: CategoryInternal,
}

// Category returns the category of the code.
// Returns CategoryInternal for codes that are not defined (safe default).
func (c Code) Category() Category {
	if cat, ok := defaultCategories[c]; ok {
		return cat
	}
	return CategoryInternal
}
