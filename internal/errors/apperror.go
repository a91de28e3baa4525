package errors

import "errors"

// AppError is a coded domain error. It carries the ErrorCode through service
// and resolver layers so the GraphQL layer can expose it in error extensions
// and the REST layer can map it to an HTTP status.
type AppError struct {
	Code    ErrorCode
	Message string
}

// New creates an AppError with the default message for the code
func New(code ErrorCode) *AppError {
	return &AppError{
		Code:    code,
		Message: GetErrorMessage(code),
	}
}

// NewWithMessage creates an AppError with an overridden message
func NewWithMessage(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Error implements the error interface
func (e *AppError) Error() string {
	return e.Message
}

// Extensions implements gqlerrors.ExtendedError so the code surfaces in
// the GraphQL error extensions map
func (e *AppError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": string(e.Code),
	}
}

// CodeOf extracts the ErrorCode from an error chain. Unrecognized errors
// map to SystemInternalError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return SystemInternalError
}

// IsCode reports whether err carries the given error code
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
