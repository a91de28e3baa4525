package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// User error codes (USER_*)
const (
	UserNotFound      ErrorCode = "USER_001"
	UserAlreadyExists ErrorCode = "USER_002"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound        ErrorCode = "CATEGORY_001"
	CategoryHasTransactions ErrorCode = "CATEGORY_002"
	CategoryInvalidIcon     ErrorCode = "CATEGORY_003"
	CategoryInvalidColor    ErrorCode = "CATEGORY_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidType   ErrorCode = "TRANSACTION_002"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials: "Invalid email or password",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidDate:   "Invalid date format or range",

	// User errors
	UserNotFound:      "User not found",
	UserAlreadyExists: "An account with this email already exists",

	// Category errors. Not-found deliberately covers "owned by someone
	// else" as well; callers cannot distinguish the two
	CategoryNotFound:        "Category not found",
	CategoryHasTransactions: "Cannot delete a category with linked transactions",
	CategoryInvalidIcon:     "Invalid category icon",
	CategoryInvalidColor:    "Invalid category color",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionInvalidType:   "Transaction type must be \"credit\" or \"debit\"",
	TransactionInvalidAmount: "Transaction amount must be a positive number",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
