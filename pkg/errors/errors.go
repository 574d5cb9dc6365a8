package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Resolution errors
	ErrUndefinedVariable ErrorCode = "UNDEFINED_VARIABLE"
	ErrEvaluate          ErrorCode = "EVALUATE"

	// Output errors
	ErrSinkWrite ErrorCode = "SINK_WRITE"

	// Variable file errors
	ErrVarsLoad  ErrorCode = "VARS_LOAD"
	ErrVarsParse ErrorCode = "VARS_PARSE"
)

// CioError represents a structured error with code and details
type CioError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CioError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CioError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CioError) Is(target error) bool {
	var targetErr *CioError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CioError with the given code and message
func New(code ErrorCode, message string) *CioError {
	return &CioError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CioError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CioError {
	return &CioError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CioError
func Wrap(err error, code ErrorCode, message string) *CioError {
	if err == nil {
		return nil
	}
	return &CioError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CioError {
	if err == nil {
		return nil
	}
	return &CioError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CioError) WithDetail(key string, value interface{}) *CioError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cioErr *CioError
	if errors.As(err, &cioErr) {
		return cioErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CioError
func GetErrorCode(err error) ErrorCode {
	var cioErr *CioError
	if errors.As(err, &cioErr) {
		return cioErr.Code
	}
	return ErrUnknown
}
